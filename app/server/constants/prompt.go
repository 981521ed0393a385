package constants

// Approximate length of the generated comment, in characters.
const CommentLengthBudget = 100

// Allowed values for the comment request. Keys arrive from the client; labels
// are interpolated into the prompt. An unknown key rejects the whole request.

var PromptGenders = map[string]string{
	"male":   "male",
	"female": "female",
	"other":  "another gender",
}

var PromptRelations = map[string]string{
	"lover":          "the writer's lover",
	"friend":         "a close friend of the writer",
	"olderSister":    "the writer's older sister",
	"youngerSister":  "the writer's younger sister",
	"olderBrother":   "the writer's older brother",
	"youngerBrother": "the writer's younger brother",
	"other":          "an acquaintance of the writer",
}

var PromptStyles = map[string]string{
	"empathy":       "a gentle, empathetic style that validates the writer's feelings",
	"advice":        "a style that offers concrete advice and hints toward a next action",
	"encouragement": "an encouraging style that praises the writer's effort and cheers them on",
	"suggestion":    "a style that proposes fresh ideas and new perspectives to try",
}
