// Package prtg renders sensor reports as the XML document PRTG expects
// from an EXE/Script Advanced sensor. It is the only place that writes
// process output.
package prtg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/storagemon/powerstore-prtg/internal/report"
)

// result is one <result> element. Limit fields are pre-formatted strings so
// that a zero threshold (limitmaxerror "0") survives omitempty.
type result struct {
	Channel         string `xml:"channel"`
	Value           string `xml:"value"`
	Unit            string `xml:"customunit,omitempty"`
	Float           int    `xml:"float"`
	LimitMaxWarning string `xml:"limitmaxwarning,omitempty"`
	LimitMaxError   string `xml:"limitmaxerror,omitempty"`
	LimitMinWarning string `xml:"limitminwarning,omitempty"`
	LimitMinError   string `xml:"limitminerror,omitempty"`
	LimitWarningMsg string `xml:"limitwarningmsg,omitempty"`
	LimitErrorMsg   string `xml:"limiterrormsg,omitempty"`
	LimitMode       int    `xml:"limitmode,omitempty"`
}

type document struct {
	XMLName xml.Name `xml:"prtg"`
	Text    string   `xml:"text,omitempty"`
	Results []result `xml:"result"`
}

type errorDocument struct {
	XMLName xml.Name `xml:"prtg"`
	Error   int      `xml:"error"`
	Text    string   `xml:"text"`
}

// WriteReport renders a successful sensor report.
func WriteReport(w io.Writer, r *report.Report) error {
	doc := document{Text: r.Text}
	for _, ch := range r.Channels {
		doc.Results = append(doc.Results, toResult(ch))
	}
	return write(w, doc)
}

// WriteError renders the error document. PRTG flags the sensor as down and
// shows the message.
func WriteError(w io.Writer, message string) error {
	return write(w, errorDocument{Error: 1, Text: message})
}

func write(w io.Writer, doc any) error {
	if _, err := fmt.Fprint(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

func toResult(ch report.Channel) result {
	r := result{
		Channel: ch.Name,
		Value:   formatValue(ch.Value, ch.Float),
		Unit:    ch.Unit,
	}
	if ch.Float {
		r.Float = 1
	}

	limits := false
	if ch.MaxWarning != nil {
		r.LimitMaxWarning = formatValue(ch.MaxWarning.Value, ch.Float)
		r.LimitWarningMsg = ch.MaxWarning.Message
		limits = true
	}
	if ch.MinWarning != nil {
		r.LimitMinWarning = formatValue(ch.MinWarning.Value, ch.Float)
		r.LimitWarningMsg = ch.MinWarning.Message
		limits = true
	}
	if ch.MaxError != nil {
		r.LimitMaxError = formatValue(ch.MaxError.Value, ch.Float)
		r.LimitErrorMsg = ch.MaxError.Message
		limits = true
	}
	if ch.MinError != nil {
		r.LimitMinError = formatValue(ch.MinError.Value, ch.Float)
		r.LimitErrorMsg = ch.MinError.Message
		limits = true
	}
	if limits {
		r.LimitMode = 1
	}
	return r
}

// formatValue renders a channel value. Integer channels must not carry a
// decimal point or PRTG rejects the result.
func formatValue(v float64, isFloat bool) string {
	if isFloat {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatInt(int64(v), 10)
}
