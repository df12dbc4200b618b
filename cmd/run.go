package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/storagemon/powerstore-prtg/internal/history"
	"github.com/storagemon/powerstore-prtg/internal/notify"
	"github.com/storagemon/powerstore-prtg/internal/powerstore"
	"github.com/storagemon/powerstore-prtg/internal/prtg"
	"github.com/storagemon/powerstore-prtg/internal/report"
)

// errParameters covers missing or malformed invocation input. PRTG shows
// the message verbatim, so it stays terse.
var errParameters = errors.New("check parameters")

func runProbe(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.Flags().GetBool("version"); v {
		fmt.Printf("powerstore-prtg version %s\n", Version)
		return nil
	}

	setupLogging(cmd)

	host, _ := cmd.Flags().GetString("host")
	mode, _ := cmd.Flags().GetString("mode")
	user, _ := cmd.Flags().GetString("user")
	password, _ := cmd.Flags().GetString("password")
	insecure, _ := cmd.Flags().GetBool("insecure")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	recordPath, _ := cmd.Flags().GetString("record")
	notifyURL, _ := cmd.Flags().GetString("notify-url")

	ctx := cmd.Context()

	rep, category, err := probe(ctx, host, mode, user, password, insecure, timeout)

	if recordPath != "" {
		record(ctx, recordPath, host, category, rep, err)
	}

	if err != nil {
		if writeErr := prtg.WriteError(os.Stdout, err.Error()); writeErr != nil {
			return writeErr
		}
		if notifyURL != "" {
			failure := &notify.Failure{Host: host, Category: category, Message: err.Error()}
			if notifyErr := notify.SendFailure(nil, notifyURL, failure); notifyErr != nil {
				slog.Warn("failure notification not delivered", "error", notifyErr)
			}
		}
		return err
	}

	return prtg.WriteReport(os.Stdout, rep)
}

// probe runs the full pipeline: validate input, log in, fetch the category's
// metrics, and build the channel report. The category string is returned for
// recording and notification even when the run fails.
func probe(ctx context.Context, host, mode, user, password string, insecure bool, timeout time.Duration) (*report.Report, string, error) {
	category, err := report.ParseCategory(mode)
	if err != nil {
		return nil, mode, err
	}
	if host == "" || user == "" || password == "" {
		return nil, mode, errParameters
	}

	client := powerstore.NewClient(powerstore.Config{
		Host:     host,
		Username: user,
		Password: password,
		Insecure: insecure,
		Timeout:  timeout,
	})

	if err := client.Login(ctx); err != nil {
		return nil, mode, err
	}
	slog.Debug("session established", "host", host, "mode", mode)

	switch category {
	case report.Device:
		r, err := client.Device(ctx)
		if err != nil {
			return nil, mode, err
		}
		return report.BuildDevice(r), mode, nil
	case report.Capacity:
		r, err := client.Capacity(ctx)
		if err != nil {
			return nil, mode, err
		}
		return report.BuildCapacity(r), mode, nil
	case report.Performance:
		r, err := client.Performance(ctx)
		if err != nil {
			return nil, mode, err
		}
		return report.BuildPerformance(r), mode, nil
	default:
		return nil, mode, &report.ErrInvalidCategory{Input: mode}
	}
}

// record appends the run outcome to the local history database. Recording
// problems are logged and never alter the probe's output or exit status.
func record(ctx context.Context, dbPath, host, category string, rep *report.Report, runErr error) {
	store, err := history.Open(ctx, dbPath)
	if err != nil {
		slog.Warn("run not recorded", "error", err)
		return
	}
	defer store.Close()

	run := &history.Run{
		Host:     host,
		Category: category,
		OK:       runErr == nil,
	}
	if runErr != nil {
		run.Message = runErr.Error()
	} else {
		run.Message = rep.Text
		run.Channels = history.JSONMap{}
		for _, ch := range rep.Channels {
			run.Channels[ch.Name] = ch.Value
		}
	}

	if _, err := store.Record(ctx, run); err != nil {
		slog.Warn("run not recorded", "error", err)
	}
}
