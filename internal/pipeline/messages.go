package pipeline

import "github.com/Margii4/weimaraner-faq-bot/internal/lang"

// Fixed reply texts. Command acknowledgements keep the original English
// wording; the guardrail and failure replies follow the user's language.
const (
	greeting     = "Hi! I am an AI FAQ bot for the Weimaraner breed. Ask your question!"
	langSetFmt   = "Language set to: %s"
	memoryWiped  = "Memory cleared."
	historyEmpty = "History is empty."
)

var outOfDomainReplies = map[lang.Code]string{
	lang.English: "I'm sorry, I can only answer questions about the Weimaraner breed. Try asking something about the dog!",
	lang.Italian: "Mi dispiace, posso rispondere solo a domande sul Weimaraner. Prova a chiedere qualcosa sul cane!",
}

var failureReplies = map[lang.Code]string{
	lang.English: "Sorry, something went wrong. Please try again.",
	lang.Italian: "Si è verificato un errore. Riprova tra poco.",
}

func outOfDomainReply(code lang.Code) string {
	if r, ok := outOfDomainReplies[code]; ok {
		return r
	}
	return outOfDomainReplies[lang.English]
}

func failureReply(code lang.Code) string {
	if r, ok := failureReplies[code]; ok {
		return r
	}
	return failureReplies[lang.English]
}
