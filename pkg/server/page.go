package server

import (
	"github.com/duynguyendang/plantcurator/pkg/matcher"
	"github.com/duynguyendang/plantcurator/pkg/render"
	"github.com/duynguyendang/plantcurator/pkg/service"
	"github.com/duynguyendang/plantcurator/pkg/vocab"
)

type optionView struct {
	Code     string
	Label    string
	Selected bool
}

type questionView struct {
	Key     string
	Title   string
	Options []optionView
}

type groupView struct {
	Name      string
	Questions []questionView
}

type modeView struct {
	Value    matcher.Mode
	Label    string
	Selected bool
}

type page struct {
	Title         string
	Subtitle      string
	ResultsHeader string
	Unselected    string
	Groups        []groupView
	Modes         []modeView
	Result        *render.ResultView
}

// newPage lays the questions out in their column groups and marks the submitted answers.
func newPage(rec *service.Recommender, req service.Request, view *render.ResultView) page {
	p := page{
		Title:         render.PageTitle,
		Subtitle:      render.PageSubtitle,
		ResultsHeader: render.ResultsHeader,
		Unselected:    vocab.Unselected,
		Result:        view,
	}

	for _, q := range rec.Questions() {
		chosen, _, _ := q.Parse(req.Answers[q.Key])
		qv := questionView{Key: q.Key, Title: q.Title}
		for _, o := range q.Options() {
			qv.Options = append(qv.Options, optionView{Code: o.Code, Label: o.Label, Selected: o.Code == chosen})
		}

		if n := len(p.Groups); n == 0 || p.Groups[n-1].Name != q.Group {
			p.Groups = append(p.Groups, groupView{Name: q.Group})
		}
		g := &p.Groups[len(p.Groups)-1]
		g.Questions = append(g.Questions, qv)
	}

	for _, m := range []struct {
		mode  matcher.Mode
		label string
	}{
		{matcher.ModeScored, "일치도 순 추천"},
		{matcher.ModeExact, "모든 조건 일치"},
	} {
		p.Modes = append(p.Modes, modeView{Value: m.mode, Label: m.label, Selected: m.mode == view.Mode})
	}
	return p
}
