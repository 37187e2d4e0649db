package tips

import (
	"fmt"
	"strings"
)

func travelTipsPrompt(destination string) string {
	return fmt.Sprintf(`
        Provide comprehensive travel tips for %s including:

        1. **Cultural Tips**:
           - Local customs and etiquette
           - Cultural do's and don'ts
           - Tipping practices

        2. **Safety Information**:
           - General safety tips
           - Areas to avoid
           - Emergency contacts

        3. **Practical Information**:
           - Best time to visit
           - Currency and payment methods
           - Language tips and useful phrases
           - Transportation options

        4. **Local Insights**:
           - Hidden gems only locals know
           - Best neighborhoods to explore
           - Seasonal events and festivals

        5. **Money-Saving Tips**:
           - Free activities and attractions
           - Best value dining options
           - Transportation hacks

        Format the response with clear sections and actionable advice.`, destination)
}

func restaurantsPrompt(destination string, cuisinePreferences []string) string {
	cuisinePart := "Include variety of local and international cuisines"
	if len(cuisinePreferences) > 0 {
		cuisinePart = fmt.Sprintf("Preferred cuisines: %s", strings.Join(cuisinePreferences, ", "))
	}
	return fmt.Sprintf(`
        Recommend the top 10 restaurants in %s.

        Include:
        - Restaurant name and type of cuisine
        - Brief description
        - Price range
        - Must-try dishes
        - Location/area

        %s

        Format as a clear list with details for each restaurant.`, destination, cuisinePart)
}

func attractionsPrompt(destination string, interests []string) string {
	return fmt.Sprintf(`
        Recommend top attractions in %s based on these interests: %s.

        For each attraction, provide:
        - Name and brief description
        - Why it matches the specified interests
        - Best time to visit
        - Approximate duration needed
        - Entrance fees (if any)
        - Insider tips

        Include both popular attractions and hidden gems.`, destination, strings.Join(interests, ", "))
}
