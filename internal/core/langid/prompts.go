package langid

import "fmt"

// CareerGuidancePrompt is the base persona for the assistant
const CareerGuidancePrompt = `You are an expert AI assistant helping job seekers and career restarters with career guidance, upskilling, resume creation, job discovery, and confidence building.

Always:
- Understand the user's intent from their message.
- Give detailed, step-by-step answers with suggestions, links, and tips.
- Use encouraging, confidence-building language.
- Respect boundaries, privacy, and safety. Decline personal, inappropriate, or unsafe questions and steer back to career support.

Classify the user as a Starter (new graduate), Restarter (returning after a career break), or Riser (mid-career professional) and tailor guidance accordingly.`

// SystemPrompt returns the system prompt for a detected language
// custom, when non-empty, replaces the base persona
func SystemPrompt(code, custom string) string {
	base := CareerGuidancePrompt
	if custom != "" {
		base = custom
	}
	if instr := LanguageInstruction(code); instr != "" {
		return base + "\n\n" + instr
	}
	return base
}

// LanguageInstruction asks the model to answer in the user's language
// it is empty for English and for codes outside the catalog
func LanguageInstruction(code string) string {
	c, ok := Lookup(code)
	if !ok || c.Code == FallbackCode {
		return ""
	}
	return fmt.Sprintf(
		"The user is speaking in %s (%s). Please respond in the same language to maintain consistency and cultural context.",
		c.Name, c.NativeName,
	)
}
