package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Output управляет форматированием вывода CLI.
type Output struct {
	jsonMode bool
	w        io.Writer // stdout для данных
	errW     io.Writer // stderr для сообщений
}

// NewOutput создаёт Output. Если jsonMode=true, данные выводятся в JSON.
func NewOutput(jsonMode bool) *Output {
	return &Output{
		jsonMode: jsonMode,
		w:        os.Stdout,
		errW:     os.Stderr,
	}
}

// Health выводит статус сервиса.
func (o *Output) Health(h *HealthResponse) {
	if o.jsonMode {
		o.JSON(h)
		return
	}
	fmt.Fprintln(o.w, FormatHealth(h))
}

// Predictions выводит список предсказаний.
func (o *Output) Predictions(r *PredictionsResponse) {
	if o.jsonMode {
		o.JSON(r)
		return
	}
	fmt.Fprintln(o.w, FormatPredictions(r))
}

// Prediction выводит одно предсказание.
func (o *Output) Prediction(p *Prediction) {
	if o.jsonMode {
		o.JSON(p)
		return
	}
	fmt.Fprintln(o.w, FormatPrediction(p))
}

// Metrics выводит метрики сервиса.
func (o *Output) Metrics(m *MetricsResponse) {
	if o.jsonMode {
		o.JSON(m)
		return
	}
	fmt.Fprintln(o.w, FormatMetrics(m))
}

// JSON выводит данные в формате JSON с отступами.
func (o *Output) JSON(v any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

// Error выводит сообщение об ошибке в stderr.
func (o *Output) Error(msg string) {
	fmt.Fprintln(o.errW, "Error: "+msg)
}

// --- Format: чистые функции, детерминированный текст ---
//
// Содержимое строк фиксировано. Числовые значения печатаются как
// есть: confidence вне [0, 1] рендерится арифметически, без
// специальной обработки.

// FormatHealth — блок из четырёх строк со статусом сервиса.
func FormatHealth(h *HealthResponse) string {
	lines := []string{
		"=== API Health ===",
		"Status: " + h.Status,
		"Version: " + h.Version,
		"Timestamp: " + h.Timestamp,
	}
	return strings.Join(lines, "\n")
}

// FormatPredictions — заголовок, сводка и нумерованный список
// в полученном порядке, индексация с единицы. Пустая строка после
// Timestamp присутствует всегда, и для пустого списка тоже.
func FormatPredictions(r *PredictionsResponse) string {
	lines := []string{
		"=== Recent Predictions ===",
		fmt.Sprintf("Count: %d", r.Count),
		"Timestamp: " + r.Timestamp,
		"",
	}
	for i, p := range r.Predictions {
		lines = append(lines, fmt.Sprintf("%d. %s (confidence: %.2f%%)", i+1, p.Label, p.Confidence*100))
	}
	return strings.Join(lines, "\n")
}

// FormatPrediction — результат одного предсказания.
func FormatPrediction(p *Prediction) string {
	lines := []string{
		"=== Prediction Result ===",
		"Label: " + p.Label,
		fmt.Sprintf("Confidence: %.2f%%", p.Confidence*100),
	}
	return strings.Join(lines, "\n")
}

// FormatMetrics — метрики сервиса.
func FormatMetrics(m *MetricsResponse) string {
	lines := []string{
		"=== API Metrics ===",
		"Uptime: " + m.Uptime,
		fmt.Sprintf("Total Requests: %d", m.RequestsTotal),
		fmt.Sprintf("Memory Usage: %.2f MB", m.MemoryUsageMB),
		fmt.Sprintf("Goroutines: %d", m.Goroutines),
		fmt.Sprintf("CPU Cores: %d", m.CPUCores),
	}
	return strings.Join(lines, "\n")
}
