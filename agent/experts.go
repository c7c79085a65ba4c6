package agent

import (
	"context"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the experts' skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a Path of Exile 2 player tracking a farming session: what it cost,
			what dropped, and whether the strategy is profitable.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewScout returns the expert grounded in live web search, for everything
// about the game economy outside the local files.
func NewScout() *Expert {
	return &Expert{
		Name: "Scout",
		Description: `This is an expert scout of the Path of Exile 2 economy,
		very well aware of leagues, farming strategies, patch notes and market trends.
		Ask the Scout whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in the Path of Exile 2 economy. You can search and find about
			anything related to leagues, farming strategies, item values and patch notes.
			You leverage Google Search to ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewBookkeeper returns the expert over the user's local session and
// catalog. The two tools are injected so the agent stays free of file
// handling.
func NewBookkeeper(sessionReport func() (string, error), market func(section, search string) (string, error)) *Expert {
	lib := []Function{
		reportFunc(sessionReport),
		marketFunc(market),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's farming
		session and the loaded price catalog. Ask him for the session totals, the loot
		breakdown or the current value of any item.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the bookkeeper of the user's farming session.
				Use the available tools to read the session report and the price catalog.
				You are part of a team of experts, yours is everything recorded locally:
				the investment, the loot lines and the loaded prices.
				Pardon their approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func reportFunc(load func() (string, error)) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "SessionReport",
			Description: `SessionReport returns the current farming session: the invested,
			looted and gain totals in exalted and divine, and the per-line loot breakdown.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted session report.",
			},
		},
		Fn: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			return respond(id, "SessionReport", load)
		},
	}
}

func marketFunc(load func(section, search string) (string, error)) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Market",
			Description: `Market returns the loaded price catalog, each item with its exalted value.
			Both arguments are optional filters.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"section": {
						Type:        genai.TypeString,
						Description: "Restrict the listing to one section, e.g. currency or runes.",
					},
					"search": {
						Type:        genai.TypeString,
						Description: "Keep only items whose name contains this text.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted list of items and their exalted values.",
			},
		},
		Fn: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			section, _ := args["section"].(string)
			search, _ := args["search"].(string)
			return respond(id, "Market", func() (string, error) {
				return load(section, search)
			})
		},
	}
}

func respond(id, name string, load func() (string, error)) *genai.FunctionResponse {
	out, err := load()
	if err != nil {
		return &genai.FunctionResponse{
			ID:   id,
			Name: name,
			Response: map[string]any{
				"error": err.Error(),
			},
		}
	}
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": out,
		},
	}
}
