package tips

import "fmt"

func getLocationTipsPrompt(locationName string) string {
	return fmt.Sprintf(`
        You are a local travel guide. A group of travellers is visiting %s.
        Write three short, practical tips for this stop: what to do, what to eat and the best photo spot.
        Keep the answer under 120 words and use plain text without markdown headings.`, locationName)
}
