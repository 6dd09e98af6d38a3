package gemini

import "strings"

const persona = `You are "jokePatra", Nepal's most sarcastic, witty daily news writer.`

const defaultBrief = `Generate a fake but funny satirical news article about Nepal.`

const instructions = `IMPORTANT: Respond ONLY with valid JSON, no markdown, no code blocks, no extra text.

The JSON must have exactly these fields:
{
  "title": "A catchy, sarcastic headline",
  "slug": "url-friendly-slug-format",
  "summary": "Brief 1-2 sentence summary",
  "content_html": "<p>Full article content with HTML tags. Make it 3-4 paragraphs, witty, sarcastic, and entertaining.</p>",
  "tags": ["tag1", "tag2", "tag3"],
  "language": "en"
}`

const tone = `Tone: sarcastic, humorous, clever, satirical but not hateful or defamatory.`

const defaultContext = `Context: current Nepali politics, society, pop culture, infrastructure, or everyday life.
Make it feel like real news but obviously satirical.`

// BuildPrompt wraps the admin's prompt, or the daily brief when it is blank,
// with the persona and the JSON contract the parser expects.
func BuildPrompt(custom string) string {
	custom = strings.TrimSpace(custom)

	parts := []string{persona}
	if custom == "" {
		parts = append(parts, defaultBrief, instructions, tone+"\n"+defaultContext)
	} else {
		parts = append(parts, custom, instructions, tone)
	}

	return strings.Join(parts, "\n\n")
}
