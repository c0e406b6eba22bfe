package model

// ChartConfig describes the probability bar chart.
// Field names follow the Chart.js bar config so the API output can be fed to it directly.
type ChartConfig struct {
	Type         string                `json:"type"`
	Labels       []string              `json:"labels"`
	DatasetLabel string                `json:"dataset_label"`
	Data         [OutcomeCount]float64 `json:"data"`
	Colors       []string              `json:"background_color"`
	YMin         float64               `json:"y_min"`
	YMax         float64               `json:"y_max"`
}

// NewProbabilityChart builds the fixed three-bar chart for a probability vector.
func NewProbabilityChart(probs [OutcomeCount]float64) ChartConfig {
	labels := make([]string, 0, OutcomeCount)
	colors := make([]string, 0, OutcomeCount)
	for _, o := range Outcomes() {
		labels = append(labels, o.ChartLabel())
		colors = append(colors, o.Color())
	}
	return ChartConfig{
		Type:         "bar",
		Labels:       labels,
		DatasetLabel: "Probability",
		Data:         probs,
		Colors:       colors,
		YMin:         0,
		YMax:         1,
	}
}
