package web

import (
	"fmt"

	"jokepatra/internal/models"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
	"github.com/microcosm-cc/bluemonday"
)

// FeedPageSize is the number of cards each "Load more" adds.
const FeedPageSize = 9

var contentPolicy = bluemonday.UGCPolicy()

func publishedDate(a *models.Article) string {
	if a.PublishedAt == nil {
		return "Draft"
	}
	return a.PublishedAt.Format("January 2, 2006")
}

func tagList(tags []string) g.Node {
	nodes := make([]g.Node, 0, len(tags))
	for _, tag := range tags {
		nodes = append(nodes, Span(Class("tag"), g.Text(tag)))
	}
	return Div(Class("tags"), g.Group(nodes))
}

func articleCard(a *models.Article) g.Node {
	href := "/news/" + a.Slug

	return Div(Class("card"),
		g.If(a.FeaturedImage != nil,
			A(Href(href), Img(Src(deref(a.FeaturedImage)), Alt(a.Title), g.Attr("loading", "lazy"))),
		),
		g.If(a.Satire, Span(Class("satire-badge"), g.Text("Satire"))),
		H2(A(Href(href), g.Text(a.Title))),
		P(Class("meta"), g.Text(publishedDate(a))),
		g.If(a.Summary != nil, P(g.Text(deref(a.Summary)))),
		tagList(a.Tags),
	)
}

// HomePage renders one page of the feed. "Load more" links to the next page
// while articles remain past this one.
func HomePage(list *models.ArticleList, page int) g.Node {
	seen := (page-1)*FeedPageSize + len(list.Articles)

	cards := make([]g.Node, 0, len(list.Articles))
	for i := range list.Articles {
		cards = append(cards, articleCard(&list.Articles[i]))
	}

	return Layout(LayoutProps{Title: "jokePatra - Satirical News from Nepal"},
		g.If(len(cards) == 0,
			P(Class("meta"), g.Text("No articles yet. The news is taking a tea break.")),
		),
		Div(Class("grid"), g.Group(cards)),
		P(
			g.If(page > 1,
				A(Class("load-more"), Href(fmt.Sprintf("/?page=%d", page-1)), g.Text("Newer stories")),
			),
			g.If(len(list.Articles) > 0 && seen < list.Total,
				A(Class("load-more"), Href(fmt.Sprintf("/?page=%d", page+1)), g.Text("Load more")),
			),
		),
	)
}

func ArticlePage(a *models.Article) g.Node {
	return Layout(LayoutProps{Title: a.Title + " - jokePatra", Description: deref(a.Summary)},
		Article(Class("article"),
			Span(Class("satire-badge"), g.Text("Satire")),
			H1(g.Text(a.Title)),
			P(Class("meta"),
				g.Text(publishedDate(a)),
				g.If(a.Source != nil, g.Textf(" · %s", deref(a.Source))),
			),
			g.If(a.FeaturedImage != nil,
				Img(Class("featured"), Src(deref(a.FeaturedImage)), Alt(a.Title)),
			),
			g.If(a.Summary != nil, P(Em(g.Text(deref(a.Summary))))),
			Div(Class("content"), g.Raw(contentPolicy.Sanitize(a.Content))),
			tagList(a.Tags),
		),
		P(A(Href("/"), g.Text("← Back to all news"))),
	)
}

func NotFoundPage() g.Node {
	return Layout(LayoutProps{Title: "Not found - jokePatra"},
		Div(Class("article"),
			H1(g.Text("404: Story not found")),
			P(g.Text("Either this article never existed, or the government has classified it.")),
			P(A(Href("/"), g.Text("Back to the front page"))),
		),
	)
}

func ErrorPage(message string) g.Node {
	return Layout(LayoutProps{Title: "Error - jokePatra"},
		Div(Class("article"),
			H1(g.Text("Something went wrong")),
			P(Class("meta"), g.Text(message)),
		),
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
