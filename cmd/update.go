package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Download and install a new probe binary",
	Long: `Download the published probe binary for this platform and replace the
current executable with it.

The update never runs implicitly: probe runs never touch their own binary.
The new binary is downloaded next to the current one and moved into place
with a rename, so a failed download leaves the installation untouched.`,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().String("url", "", "Base URL of the published binaries (required)")
	updateCmd.MarkFlagRequired("url")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	baseURL, _ := cmd.Flags().GetString("url")

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}

	name := fmt.Sprintf("powerstore-prtg-%s-%s", runtime.GOOS, runtime.GOARCH)
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	url := baseURL + "/" + name

	fmt.Printf("Downloading %s\n", url)

	client := &http.Client{Timeout: 5 * time.Minute}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status %s", resp.Status)
	}

	// Stage in the same directory so the final rename stays on one filesystem.
	staged := exe + ".new"
	f, err := os.OpenFile(staged, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return fmt.Errorf("create staging file: %w", err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(staged)
		return fmt.Errorf("write staging file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(staged)
		return fmt.Errorf("close staging file: %w", err)
	}

	if err := os.Rename(staged, exe); err != nil {
		os.Remove(staged)
		return fmt.Errorf("install new binary: %w", err)
	}

	fmt.Printf("Updated %s\n", exe)
	return nil
}
