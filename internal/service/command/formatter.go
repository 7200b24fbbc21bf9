package command

import (
	"fmt"
	"strings"
)

// ResponseFormatter lays out command replies for a terminal.
type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Info(title string) string {
	return fmt.Sprintf("%s\n", title)
}

func (f *ResponseFormatter) Success(message string) string {
	return fmt.Sprintf("ok: %s\n", message)
}

func (f *ResponseFormatter) Error(err error) string {
	return fmt.Sprintf("error: %s\n", err.Error())
}

func (f *ResponseFormatter) Label(label, value string) string {
	return fmt.Sprintf("%s  ›  %s\n", label, value)
}

func (f *ResponseFormatter) Usage(command string) string {
	return fmt.Sprintf("usage: %s\n", command)
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("  › %s\n", item))
	}
	return sb.String()
}

func (f *ResponseFormatter) Tip(text string) string {
	return fmt.Sprintf("tip: %s\n", text)
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "")
}
