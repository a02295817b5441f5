package client

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/fintrace-client/models"
)

const (
	defaultHistoryLimit = 20
	stdinPath           = "-"
	stdinFileName       = "stdin.csv"
)

// batchItem is one entry of the JSON output of a multi-file analysis.
type batchItem struct {
	Path     string                  `json:"path"`
	Response models.AnalysisResponse `json:"response,omitempty"`
	Error    string                  `json:"error,omitempty"`
}

func (a *App) runAnalyze(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	copyOut := fs.Bool("copy", false, "copy the JSON result to the clipboard")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	paths := fs.Args()
	if len(paths) == 0 {
		return fmt.Errorf("%w: analyze needs at least one file", ErrUsage)
	}
	if len(paths) > 1 && slices.Contains(paths, stdinPath) {
		return fmt.Errorf("%w: %q reads stdin and cannot be combined with other files", ErrUsage, stdinPath)
	}

	var (
		raw []byte
		err error
	)
	if len(paths) == 1 {
		raw, err = a.analyzeSingle(ctx, paths[0])
	} else {
		raw, err = a.analyzeBatch(ctx, paths)
	}
	if raw == nil {
		return err
	}

	if *copyOut {
		if copyErr := a.copy(string(raw)); copyErr != nil {
			a.logger.Warn().Err(copyErr).Msg("copy to clipboard failed")
			fmt.Fprintf(a.stderr, "copy to clipboard: %v\n", copyErr)
		}
	}
	return err
}

// analyzeSingle prints the result of one analysis and returns the raw body.
func (a *App) analyzeSingle(ctx context.Context, path string) ([]byte, error) {
	resp, err := a.analyze(ctx, path)
	if err != nil {
		return nil, err
	}

	if a.pretty() {
		fmt.Fprintln(a.stdout, renderResponse(resp))
	} else {
		fmt.Fprintf(a.stdout, "%s\n", resp)
	}
	return resp, nil
}

// analyzeBatch prints the results of a multi-file analysis and returns them
// as a JSON array. The error is non-nil if any file failed.
func (a *App) analyzeBatch(ctx context.Context, paths []string) ([]byte, error) {
	p := a.progress(a.stderr, fmt.Sprintf("analyzing %d files", len(paths)))
	p.Start()
	results := a.services.AnalysisService.AnalyzeFiles(ctx, paths)
	p.Stop()

	items := make([]batchItem, len(results))
	failed := 0
	for i, r := range results {
		items[i] = batchItem{Path: r.Path, Response: r.Response}
		if r.Err != nil {
			failed++
			items[i].Error = HumanizeError(r.Err)
		}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode results: %w", err)
	}

	if a.pretty() {
		for _, item := range items {
			fmt.Fprintln(a.stdout, titleStyle.Render(item.Path))
			if item.Error != "" {
				fmt.Fprintln(a.stdout, errorStyle.Render(item.Error))
				continue
			}
			fmt.Fprintln(a.stdout, renderResponse(item.Response))
		}
	} else {
		fmt.Fprintf(a.stdout, "%s\n", raw)
	}

	if failed > 0 {
		return raw, fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(paths))
	}
	return raw, nil
}

func (a *App) analyze(ctx context.Context, path string) (models.AnalysisResponse, error) {
	p := a.progress(a.stderr, "analyzing "+path)
	p.Start()
	defer p.Stop()

	if path == stdinPath {
		return a.services.AnalysisService.Analyze(ctx, models.AnalysisFile{
			Name:    stdinFileName,
			Content: a.stdin,
		})
	}
	return a.services.AnalysisService.AnalyzeFile(ctx, path)
}

func (a *App) analyzeReport(ctx context.Context, args []string, cmd string) (models.AnalysisReport, error) {
	if len(args) != 1 {
		return models.AnalysisReport{}, fmt.Errorf("%w: %s needs exactly one file", ErrUsage, cmd)
	}
	if args[0] == stdinPath && cmd == "chat" {
		return models.AnalysisReport{}, fmt.Errorf("%w: chat reads questions from stdin, pass a file", ErrUsage)
	}

	resp, err := a.analyze(ctx, args[0])
	if err != nil {
		return models.AnalysisReport{}, err
	}

	report, err := resp.Report()
	if err != nil {
		return models.AnalysisReport{}, fmt.Errorf("read analysis report: %w", err)
	}
	return report, nil
}

func (a *App) runSummarize(ctx context.Context, args []string) error {
	report, err := a.analyzeReport(ctx, args, "summarize")
	if err != nil {
		return err
	}

	p := a.progress(a.stderr, "writing summary")
	p.Start()
	summary, err := a.services.AnalysisService.Summarize(ctx, report)
	p.Stop()
	if err != nil {
		return err
	}

	if a.pretty() {
		fmt.Fprintln(a.stdout, renderSummary(summary.Summary))
		return nil
	}
	return json.NewEncoder(a.stdout).Encode(summary)
}

func (a *App) runChat(ctx context.Context, args []string) error {
	report, err := a.analyzeReport(ctx, args, "chat")
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, renderSummaryLine(report.Summary))
	fmt.Fprintln(a.stdout, helpStyle.Render(`ask about the result, "exit" to quit`))

	var messages []models.ChatMessage
	scanner := bufio.NewScanner(a.stdin)
	for {
		fmt.Fprint(a.stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(a.stdout)
			return scanner.Err()
		}

		question := strings.TrimSpace(scanner.Text())
		switch question {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		messages = append(messages, models.ChatMessage{Role: models.ChatRoleUser, Content: question})

		p := a.progress(a.stderr, "thinking")
		p.Start()
		reply, err := a.services.AnalysisService.Chat(ctx, messages, report)
		p.Stop()
		if err != nil {
			// drop the unanswered question so it can be asked again
			messages = messages[:len(messages)-1]
			a.logger.Warn().Err(err).Msg("chat request failed")
			fmt.Fprintln(a.stderr, errorStyle.Render(HumanizeError(err)))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}

		messages = append(messages, models.ChatMessage{Role: models.ChatRoleAssistant, Content: reply.Content})
		fmt.Fprintf(a.stdout, ">> %s\n", reply.Content)
	}
}

func (a *App) runShow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: show needs a record id", ErrUsage)
	}

	rec, err := a.services.AnalysisService.Record(ctx, args[0])
	if err != nil {
		return err
	}

	if a.pretty() {
		fmt.Fprintln(a.stdout, renderHistory([]models.AnalysisRecord{rec}))
		if rec.Error != "" {
			fmt.Fprintln(a.stdout, errorStyle.Render(rec.Error))
		}
		if len(rec.Response) > 0 {
			fmt.Fprintln(a.stdout, renderResponse(rec.Response))
		}
		return nil
	}
	return json.NewEncoder(a.stdout).Encode(rec)
}

func (a *App) runHistory(ctx context.Context, args []string) error {
	limit := defaultHistoryLimit
	switch len(args) {
	case 0:
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("%w: history limit must be a positive number, got %q", ErrUsage, args[0])
		}
		limit = n
	default:
		return fmt.Errorf("%w: history takes at most one argument", ErrUsage)
	}

	records, err := a.services.AnalysisService.History(ctx, limit)
	if err != nil {
		return err
	}

	if a.pretty() {
		fmt.Fprintln(a.stdout, renderHistory(records))
		return nil
	}
	if records == nil {
		records = []models.AnalysisRecord{}
	}
	return json.NewEncoder(a.stdout).Encode(records)
}
