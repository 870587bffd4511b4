package dto

import (
	"github.com/aretw0/turing/pkg/domain"
)

// DefinitionDocument is the structured (YAML/JSON) form of a machine definition.
// It uses "mapstructure" tags so documents decoded into generic maps can be bound directly.
type DefinitionDocument struct {
	States        []string         `json:"states" mapstructure:"states"`
	InputAlphabet []string         `json:"input_alphabet" mapstructure:"input_alphabet"`
	TapeAlphabet  []string         `json:"tape_alphabet" mapstructure:"tape_alphabet"`
	InitialState  string           `json:"initial_state" mapstructure:"initial_state"`
	Blank         string           `json:"blank" mapstructure:"blank"`
	FinalStates   []string         `json:"final_states" mapstructure:"final_states"`
	Transitions   []TransitionItem `json:"transitions" mapstructure:"transitions"`
}

// TransitionItem is one row of the transition table.
type TransitionItem struct {
	From  string `json:"from" mapstructure:"from"`
	Read  string `json:"read" mapstructure:"read"`
	To    string `json:"to" mapstructure:"to"`
	Write string `json:"write" mapstructure:"write"`
	Move  string `json:"move" mapstructure:"move"`
}

// ToSpec converts the document into a domain.Spec. Rule order follows the document.
func (d DefinitionDocument) ToSpec() domain.Spec {
	spec := domain.Spec{
		States:        toStates(d.States),
		InputAlphabet: toSymbols(d.InputAlphabet),
		TapeAlphabet:  toSymbols(d.TapeAlphabet),
		Initial:       domain.State(d.InitialState),
		Blank:         domain.Symbol(d.Blank),
		Finals:        toStates(d.FinalStates),
	}
	for i, t := range d.Transitions {
		spec.Rules = append(spec.Rules, domain.Rule{
			Key: domain.Key{State: domain.State(t.From), Symbol: domain.Symbol(t.Read)},
			Action: domain.Action{
				Next:  domain.State(t.To),
				Write: domain.Symbol(t.Write),
				Move:  domain.ParseDirection(t.Move),
			},
			Line: i,
			Raw:  t.Move,
		})
	}
	return spec
}

// FromDefinition builds the document view of a frozen definition.
func FromDefinition(def *domain.Definition) DefinitionDocument {
	doc := DefinitionDocument{
		States:        fromStates(def.States()),
		InputAlphabet: fromSymbols(def.InputAlphabet()),
		TapeAlphabet:  fromSymbols(def.TapeAlphabet()),
		InitialState:  string(def.Initial()),
		Blank:         string(def.Blank()),
		FinalStates:   fromStates(def.Finals()),
		Transitions:   []TransitionItem{},
	}
	for _, r := range def.Rules() {
		move := r.Raw
		if move == "" {
			move = r.Move.String()
		}
		doc.Transitions = append(doc.Transitions, TransitionItem{
			From:  string(r.State),
			Read:  string(r.Symbol),
			To:    string(r.Next),
			Write: string(r.Write),
			Move:  move,
		})
	}
	return doc
}

func toStates(in []string) []domain.State {
	out := make([]domain.State, len(in))
	for i, s := range in {
		out[i] = domain.State(s)
	}
	return out
}

func toSymbols(in []string) []domain.Symbol {
	out := make([]domain.Symbol, len(in))
	for i, s := range in {
		out[i] = domain.Symbol(s)
	}
	return out
}

func fromStates(in []domain.State) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

func fromSymbols(in []domain.Symbol) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
