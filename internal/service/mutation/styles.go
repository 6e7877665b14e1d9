package mutation

import (
	"fmt"

	"github.com/mirrornote/backend/internal/domain"
)

// styleInstructions holds the rewrite instruction for each AI variant;
// index n-1 is the template for variant id n. The templates instruct the
// model to rewrite only the subjective parts of the entry (inverted,
// optimistic, pessimistic, self-aggrandizing) while keeping tone, proper
// nouns and objective facts intact.
var styleInstructions = [domain.NumStyles]string{
	"入力テキストの感想・感情・意見を真逆の意味合いに書き換えてください。但し、口調・固有名詞と客観的事実は変更しないでください。",
	"入力テキストの感想・感情・意見など主観的な部分を楽観的に書き替えてください。但し、口調・固有名詞と客観的事実は変更しないでください。",
	"入力テキストの感想・感情・意見など主観的な部分を悲観的に書き替えてください。但し、口調・固有名詞と客観的事実は変更しないでください。",
	"入力テキストの感想・感情・意見など主観的な部分を自己拡張的に書き替えてください。但し、口調・固有名詞と客観的事実は変更しないでください。",
}

const (
	lineBreakNote   = "ただし、改行は入力文そのままにすること。"
	promptSeparator = "================"
)

// styleInstruction returns the rewrite template for a style variant.
// The source diary has no template; asking for one is a programming error.
func styleInstruction(id domain.VariantID) string {
	if id.Int() < 1 || id.Int() > domain.NumStyles {
		panic(fmt.Sprintf("mutation: no style instruction for variant %d", id.Int()))
	}
	return styleInstructions[id.Int()-1]
}

// buildPrompt assembles the full request text: style instruction,
// line-break preservation note, separator, then the input.
func buildPrompt(id domain.VariantID, text string) string {
	return fmt.Sprintf("%s %s\n %s \n%s", styleInstruction(id), lineBreakNote, promptSeparator, text)
}
