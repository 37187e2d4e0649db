package types

// DailyForecast is one aggregated day of forecast data.
type DailyForecast struct {
	Date      string  `json:"date"`
	AvgTempC  float64 `json:"avg_temp_c"`
	MinTempC  float64 `json:"min_temp_c"`
	MaxTempC  float64 `json:"max_temp_c"`
	Condition string  `json:"condition"`
	Humidity  int     `json:"humidity"`
	WindSpeed float64 `json:"wind_speed"`
}

// WeatherForecast groups the daily forecasts returned for a location.
type WeatherForecast struct {
	Location  string          `json:"location"`
	Forecasts []DailyForecast `json:"forecasts"`
}
