package gemini

import (
	"fmt"
	"strings"

	"github.com/happybirthday/ai-server/relay/model"
)

// TemplatePrompt is used when no API key is configured.
func TemplatePrompt(profile model.UserProfile) string {
	return fmt.Sprintf("Cinematic shot of a birthday party for %s, highly detailed, 8k.", profile.Name.Or("someone"))
}

// FallbackPrompt is used when the model call fails.
func FallbackPrompt(profile model.UserProfile) string {
	var b strings.Builder
	b.WriteString("Birthday party")
	if profile.LocationName.Set {
		b.WriteString(" at ")
		b.WriteString(profile.LocationName.Value)
	}
	if profile.Food.Set {
		b.WriteString(" with ")
		b.WriteString(profile.Food.Value)
	}
	b.WriteString(", cinematic lighting, 8k.")
	return b.String()
}

// BuildInstruction renders the request sent to the language model. Absent fields are left out.
func BuildInstruction(profile model.UserProfile) string {
	var b strings.Builder
	b.WriteString("You are an expert AI video prompt engineer.\n")
	b.WriteString("Convert the following user input into a highly detailed, cinematic text-to-video prompt for a realistic AI model (like Luma or Veo).\n\n")

	b.WriteString("User Info:\n")
	writeField(&b, "Name", profile.Name)
	writeField(&b, "Age", profile.Age)
	writeField(&b, "Vibe", profile.Vibe)
	writeField(&b, "Location", profile.LocationName)
	writeField(&b, "Food", profile.Food)
	writeField(&b, "Country Style", model.Text(profile.Country.Or("General")))

	b.WriteString("\nRequirements:\n")
	b.WriteString("- Wide angle 21:9 aspect ratio description.\n")
	b.WriteString("- First person POV.\n")
	b.WriteString("- Describe lighting, camera movement (handheld 360), and texture.\n")
	b.WriteString("- Output ONLY the prompt in English.\n")
	return b.String()
}

func writeField(b *strings.Builder, label string, value model.OptionalText) {
	if !value.Set {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value.Value)
}
