// Package prompt assembles the per-language system instruction and the
// grounded user prompt sent to the completion backend.
package prompt

import (
	"strings"

	"github.com/Margii4/weimaraner-faq-bot/internal/lang"
	"github.com/Margii4/weimaraner-faq-bot/internal/retrieval"
)

const contextSeparator = "\n---\n"

var systemPrompts = map[lang.Code]string{
	lang.English: "You are a native English canine expert. Answer ONLY in natural, correct, " +
		"literary English. Never translate phrases literally from other languages. " +
		"If you don't know the answer from context, just say you don't know. " +
		"Assume follow-up questions are still about the Weimaraner breed unless the user clearly changes the subject.",
	lang.Italian: "Sei un esperto cinofilo madrelingua italiano. Rispondi SOLO in italiano naturale, " +
		"corretto e professionale, evitando calchi o traduzioni letterali da altre lingue. " +
		"Se non sai la risposta dal contesto, scrivi semplicemente che non lo sai. " +
		"Considera le domande successive riferite al Weimaraner, a meno che l'utente non cambi chiaramente argomento.",
}

// System returns the fixed system instruction for a language.
func System(code lang.Code) string {
	if p, ok := systemPrompts[code]; ok {
		return p
	}
	return systemPrompts[lang.English]
}

// User interpolates retrieved context, recent questions and the current
// question into the language-specific answer template. The retrieved
// documents are concatenated as-is; upstream filtering is the only bound on
// context size.
func User(code lang.Code, docs []retrieval.Document, recentQuestions []string, question string) string {
	texts := make([]string, 0, len(docs))
	for _, d := range docs {
		texts = append(texts, d.Content)
	}
	context := strings.Join(texts, contextSeparator)
	recent := strings.Join(recentQuestions, "\n")

	var b strings.Builder
	if code == lang.Italian {
		b.WriteString("Rispondi come un esperto cinofilo madrelingua italiano. ")
		b.WriteString("Usa solo i fatti dal contesto sottostante, senza mai tradurre letteralmente o usare parole di altre lingue. ")
		b.WriteString("Adatta il testo a uno stile professionale e naturale per un lettore italiano.\n")
		if recent != "" {
			b.WriteString("Domande recenti:\n")
			b.WriteString(recent)
			b.WriteString("\n")
		}
		b.WriteString("Contesto: ")
		b.WriteString(context)
		b.WriteString("\nDomanda: ")
		b.WriteString(question)
		b.WriteString("\nRisposta:")
		return b.String()
	}

	b.WriteString("Answer as a native English canine expert. Use ONLY facts from the context below. ")
	b.WriteString("Do not translate literally from other languages. Write in natural, professional, literary English.\n")
	if recent != "" {
		b.WriteString("Recent questions:\n")
		b.WriteString(recent)
		b.WriteString("\n")
	}
	b.WriteString("Context: ")
	b.WriteString(context)
	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\nAnswer:")
	return b.String()
}
