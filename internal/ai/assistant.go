package ai

import (
	"context"
	"fmt"
)

// Generator is the completion contract the assistant depends on. *Client
// satisfies it; tests substitute fakes.
type Generator interface {
	Generate(ctx context.Context, systemInstruction, prompt string, cfg *GenerationConfig) (string, error)
}

// Fallback messages shown when the collaborator fails. The UI contract is
// that AI failures degrade to these strings and never crash a request.
const (
	RecommendationFallback = "Desculpe, não foi possível gerar uma recomendação no momento."
	ChatFallback           = "Desculpe, não foi possível responder no momento. Tente novamente mais tarde."
)

const chatSystemInstruction = "Você é o assistente do AuditForce. Responda em português do Brasil, " +
	"de forma clara e objetiva, usando EXCLUSIVAMENTE as informações do contexto fornecido. " +
	"Se a resposta não estiver no contexto, diga que não possui essa informação."

// Assistant wraps the two call shapes the application consumes.
type Assistant struct {
	gen Generator
}

func NewAssistant(gen Generator) *Assistant {
	return &Assistant{gen: gen}
}

// Recommend generates a remediation recommendation for one finding.
func (a *Assistant) Recommend(ctx context.Context, findingDescription string) (string, error) {
	prompt := fmt.Sprintf("Com base na seguinte constatação de auditoria, sugira um plano de ação "+
		"e recomendação claros e concisos. A resposta deve ser em português do Brasil.\n\n"+
		"Constatação: %q", findingDescription)
	return a.gen.Generate(ctx, "", prompt, nil)
}

// Chat answers a user prompt constrained to the supplied serialized context.
// The context must already be access-filtered by the caller; this layer
// only forwards it.
func (a *Assistant) Chat(ctx context.Context, userPrompt, serializedContext string) (string, error) {
	prompt := fmt.Sprintf("Contexto (dados de auditoria do usuário):\n%s\n\nPergunta: %s",
		serializedContext, userPrompt)
	return a.gen.Generate(ctx, chatSystemInstruction, prompt, nil)
}
