package usecase

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/repository"
	"github.com/m-mizutani/leakgate/pkg/utils/logging"
)

type remediation int

const (
	remediationNone remediation = iota
	remediationSkip
	remediationQuit
)

const remediationPrompt = "[a]cknowledge / [f]alse positive / [t]est data / [r]evoked / [s]kip / [q]uit: "

// applyAnswer updates the finding by the answer. It returns remediationNone when the finding was changed.
func applyAnswer(f *model.Finding, answer string) (remediation, bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "a":
		f.Acknowledged = true
	case "f":
		f.Classification = types.ClassificationFalsePositive
	case "t":
		f.Classification = types.ClassificationTestData
	case "r":
		f.Classification = types.ClassificationRevoked
	case "s":
		return remediationSkip, true
	case "q":
		return remediationQuit, true
	default:
		return remediationNone, false
	}
	return remediationNone, true
}

// Remediate asks how to handle every unacknowledged whitelist entry and writes the answers back. It never scans.
// End of input is handled as quit.
func (x *UseCase) Remediate(ctx context.Context, in io.Reader, out io.Writer) error {
	store := x.clients.Whitelist()
	if store == nil {
		return goerr.Wrap(types.ErrInvalidOption, "whitelist store is not configured")
	}

	unlock, err := store.Lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	findings, err := store.Read(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_, err := fmt.Fprintln(out, "Whitelist is empty, nothing to remediate")
			return err
		}
		return err
	}

	var pending []*model.Finding
	for _, f := range findings.Sorted() {
		if !f.IsAcknowledged() {
			pending = append(pending, f)
		}
	}

	scanner := bufio.NewScanner(in)
	var changed int

loop:
	for i, f := range pending {
		fmt.Fprintf(out, "\n(%d/%d) %s\n  commit: %s (%s) %s\n  reason: %s\n  string: %s\n",
			i+1, len(pending), f.Path,
			f.CommitHash.Short(), f.Branch, f.Commit,
			f.Reason, f.StringDetected,
		)

		for {
			fmt.Fprint(out, remediationPrompt)
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return goerr.Wrap(err, "failed to read answer")
				}
				break loop
			}

			action, ok := applyAnswer(f, scanner.Text())
			if !ok {
				fmt.Fprintln(out, "unknown answer")
				continue
			}

			switch action {
			case remediationQuit:
				break loop
			case remediationNone:
				changed++
			}
			break
		}
	}

	if changed == 0 {
		_, err := fmt.Fprintln(out, "No change")
		return err
	}

	if err := store.Write(ctx, findings); err != nil {
		return goerr.Wrap(err, "failed to write remediated whitelist")
	}

	logging.From(ctx).Info("whitelist remediated",
		slog.String("location", store.Location()),
		slog.Int("changed", changed),
		slog.Int("pending", len(pending)),
	)
	_, err = fmt.Fprintf(out, "%d entries updated\n", changed)
	return err
}
