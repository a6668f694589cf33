package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/duynguyendang/plantcurator/pkg/matcher"
	"github.com/duynguyendang/plantcurator/pkg/render"
	"github.com/duynguyendang/plantcurator/pkg/service"
	"github.com/duynguyendang/plantcurator/pkg/vocab"
)

const helpText = `Commands:
  again                 answer all six questions again
  set <key> <answer>    change one answer (key: difficulty, light_level, size, air_purifying, pet_safe, growth_speed)
  mode <scored|exact>   switch the match mode
  show                  print the last result again
  exit | quit           leave`

// Run starts the interactive questionnaire. It asks the six questions, prints the
// recommendation, and then accepts commands until the input ends or the user quits.
func Run(ctx context.Context, cfg Config, rec *service.Recommender, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "\n--- %s ---\n", render.PageTitle)
	fmt.Fprintln(out, render.PageSubtitle)
	fmt.Fprintln(out, "Answer with the option number, code, or label. Leave blank to skip. Type 'exit' or 'quit' to stop.")

	r := &runner{
		cfg:     cfg,
		rec:     rec,
		scanner: bufio.NewScanner(in),
		out:     out,
		session: NewSession(cfg.Mode),
	}

	for {
		if !r.askAll() {
			return nil
		}
		if err := r.run(ctx); err != nil {
			return err
		}
		again, err := r.commands(ctx)
		if err != nil || !again {
			return err
		}
		r.session.Reset()
	}
}

type runner struct {
	cfg     Config
	rec     *service.Recommender
	scanner *bufio.Scanner
	out     io.Writer
	session *Session
}

// readLine prompts and returns the next trimmed line; ok is false at end of input or on exit.
func (r *runner) readLine(prompt string) (string, bool) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		return "", false
	}
	line := strings.TrimSpace(r.scanner.Text())
	if line == "exit" || line == "quit" {
		return "", false
	}
	return line, true
}

// askAll walks through the six questions. It returns false when the user leaves.
func (r *runner) askAll() bool {
	for _, q := range vocab.Questions() {
		fmt.Fprintf(r.out, "\n%s\n", q.Title)
		opts := q.Options()
		for i, o := range opts {
			fmt.Fprintf(r.out, "  %d) %s\n", i+1, o.Label)
		}

		for {
			line, ok := r.readLine("> ")
			if !ok {
				return false
			}
			code, err := parseAnswer(q, line)
			if err != nil {
				fmt.Fprintf(r.out, "❌ %v\n", err)
				continue
			}
			r.session.Answers[q.Key] = code
			break
		}
	}
	return true
}

// parseAnswer accepts a 1-based option number as well as anything Question.Parse accepts.
func parseAnswer(q vocab.Question, line string) (string, error) {
	if n, err := strconv.Atoi(line); err == nil {
		opts := q.Options()
		if n < 1 || n > len(opts) {
			return "", fmt.Errorf("choose 1-%d", len(opts))
		}
		return opts[n-1].Code, nil
	}
	code, _, err := q.Parse(line)
	return code, err
}

func (r *runner) run(ctx context.Context) error {
	view, err := r.rec.Recommend(ctx, service.Request{Answers: r.session.Answers, Mode: string(r.session.Mode)})
	if err != nil {
		return err
	}
	r.session.Record(view)
	return r.show()
}

func (r *runner) show() error {
	if r.session.LastResult == nil {
		fmt.Fprintln(r.out, "No result yet.")
		return nil
	}
	fmt.Fprintln(r.out)
	return render.WriteText(r.out, r.session.LastResult, render.TextOptions{Color: r.cfg.Color})
}

// commands handles follow-up commands. It returns true when the user wants to start over.
func (r *runner) commands(ctx context.Context) (bool, error) {
	fmt.Fprintf(r.out, "\n%s\n", helpText)
	for {
		line, ok := r.readLine("\ncmd> ")
		if !ok {
			return false, nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "again":
			return true, nil

		case "show":
			if err := r.show(); err != nil {
				return false, err
			}
			continue

		case "mode":
			if len(fields) != 2 {
				fmt.Fprintln(r.out, "Usage: mode <scored|exact>")
				continue
			}
			m, err := matcher.ParseMode(fields[1], r.session.Mode)
			if err != nil {
				fmt.Fprintf(r.out, "❌ %v\n", err)
				continue
			}
			r.session.Mode = m

		case "set":
			if len(fields) < 3 {
				fmt.Fprintln(r.out, "Usage: set <key> <answer>")
				continue
			}
			q, found := vocab.QuestionByKey(fields[1])
			if !found {
				fmt.Fprintf(r.out, "❌ unknown question %q\n", fields[1])
				continue
			}
			code, err := parseAnswer(q, strings.Join(fields[2:], " "))
			if err != nil {
				fmt.Fprintf(r.out, "❌ %v\n", err)
				continue
			}
			r.session.Answers[q.Key] = code

		default:
			fmt.Fprintln(r.out, helpText)
			continue
		}

		if err := r.run(ctx); err != nil {
			return false, err
		}
	}
}
