package model

import (
	"fmt"
	"math"
)

// Outcome is the predicted class returned by the service.
type Outcome int

const (
	OutcomeRIF Outcome = iota
	OutcomeRPL
	OutcomeCombined

	// OutcomeCount is the number of classes; every per-class table has this length.
	OutcomeCount = 3
)

type outcomeDescriptor struct {
	label      string
	chartLabel string
	color      string
	note       string
}

var outcomeTable = [OutcomeCount]outcomeDescriptor{
	OutcomeRIF: {
		label:      "RIF (Recurrent Implantation Failure)",
		chartLabel: "RIF (0)",
		color:      "#6D0E1E",
		note:       "The profile is most consistent with recurrent implantation failure: embryos repeatedly fail to implant after transfer. Review endometrial receptivity and immune markers with the treating clinician.",
	},
	OutcomeRPL: {
		label:      "RPL (Recurrent Pregnancy Loss)",
		chartLabel: "RPL (1)",
		color:      "#A83244",
		note:       "The profile is most consistent with recurrent pregnancy loss: pregnancies are established but lost. Th17/Treg balance is a relevant factor to review with the treating clinician.",
	},
	OutcomeCombined: {
		label:      "Both (RIF and RPL)",
		chartLabel: "Both (2)",
		color:      "#D96A70",
		note:       "The profile shares features of both implantation failure and pregnancy loss. A combined work-up covering uterine factors and immune balance is suggested.",
	},
}

// ParseOutcome maps a predicted class id onto an Outcome.
func ParseOutcome(class int) (Outcome, error) {
	o := Outcome(class)
	if !o.Valid() {
		return 0, NewPredictError(KindUnknownClass, fmt.Sprintf("predicted_class %d is not one of 0, 1, 2", class), nil)
	}
	return o, nil
}

func (o Outcome) Valid() bool {
	return o >= 0 && int(o) < OutcomeCount
}

func (o Outcome) Label() string      { return o.descriptor().label }
func (o Outcome) ChartLabel() string { return o.descriptor().chartLabel }
func (o Outcome) Color() string      { return o.descriptor().color }
func (o Outcome) Note() string       { return o.descriptor().note }

func (o Outcome) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return o.ChartLabel()
}

func (o Outcome) descriptor() outcomeDescriptor {
	if !o.Valid() {
		return outcomeDescriptor{}
	}
	return outcomeTable[o]
}

// Outcomes lists every class in id order.
func Outcomes() []Outcome {
	out := make([]Outcome, OutcomeCount)
	for i := range out {
		out[i] = Outcome(i)
	}
	return out
}

// Diagnosis is the content of the diagnosis summary region.
type Diagnosis struct {
	Outcome    Outcome `json:"predicted_class"`
	Label      string  `json:"label"`
	Confidence string  `json:"confidence"`
	Note       string  `json:"note"`
}

func NewDiagnosis(o Outcome, confidence float64) Diagnosis {
	return Diagnosis{
		Outcome:    o,
		Label:      o.Label(),
		Confidence: FormatConfidence(confidence),
		Note:       o.Note(),
	}
}

// FormatConfidence renders a [0,1] confidence as a percentage with one decimal, e.g. "84.2%".
func FormatConfidence(confidence float64) string {
	if math.IsNaN(confidence) {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", confidence*100)
}
