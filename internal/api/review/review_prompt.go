package review

import "fmt"

func sentimentPrompt(reviewText string) string {
	return fmt.Sprintf(`
        Analyze the sentiment of this review and respond with ONLY one word: positive, negative, or neutral.

        Review: "%s"

        Response (one word only):`, reviewText)
}

func insightsPrompt(reviewsText string) string {
	return fmt.Sprintf(`
        Analyze these travel reviews and provide 5-7 key insights about the destination/experience.
        Focus on:
        - Common positive aspects mentioned
        - Common complaints or issues
        - Recommendations that appear frequently
        - Notable patterns in visitor experiences

        Reviews:
        %s

        Provide insights as a list of clear, actionable points.`, reviewsText)
}
