package web

import (
	"time"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

type LayoutProps struct {
	Title       string
	Description string
}

const stylesheet = `
body { margin: 0; font-family: Georgia, "Times New Roman", serif; background: #faf7f2; color: #1d1d1d; }
a { color: #b3261e; }
.container { max-width: 960px; margin: 0 auto; padding: 0 1em; }
.site-header { border-bottom: 3px double #1d1d1d; padding: 1.2em 0 .6em; text-align: center; }
.site-header .brand { font-size: 2.6em; font-weight: bold; text-decoration: none; color: #1d1d1d; }
.site-header .tagline { font-style: italic; margin: .2em 0 0; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 1.2em; margin: 1.5em 0; }
.card { background: #fff; border: 1px solid #ddd; padding: 1em; }
.card img, .article img.featured { width: 100%; height: auto; }
.meta { color: #666; font-size: .85em; }
.tag { display: inline-block; background: #eee; padding: 0 .4em; margin-right: .3em; font-size: .8em; }
.satire-badge { background: #b3261e; color: #fff; padding: 0 .4em; font-size: .75em; text-transform: uppercase; }
.load-more { display: block; text-align: center; margin: 1em 0 2em; }
.article { background: #fff; padding: 1.5em; margin: 1.5em 0; }
.site-footer { border-top: 1px solid #ddd; padding: 1em 0; text-align: center; font-size: .85em; color: #666; }
.admin table { width: 100%; border-collapse: collapse; }
.admin td, .admin th { border-bottom: 1px solid #ddd; padding: .4em; text-align: left; }
.admin .hidden { display: none; }
.admin .error { color: #b3261e; }
.admin textarea, .admin input[type=text], .admin input[type=email], .admin input[type=password] { width: 100%; box-sizing: border-box; }
`

func siteHeader() g.Node {
	return Header(Class("site-header"),
		A(Class("brand"), Href("/"), g.Text("jokePatra")),
		P(Class("tagline"), g.Text("Nepal's most trusted source of untrustworthy news")),
	)
}

func siteFooter() g.Node {
	return Footer(Class("site-footer"),
		P(g.Textf("© %d jokePatra. Everything here is satire. Any resemblance to actual events is purely because reality got there first.", time.Now().Year())),
	)
}

func Layout(props LayoutProps, children ...g.Node) g.Node {
	description := props.Description
	if description == "" {
		description = "Satirical news from Nepal"
	}

	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("description"), Content(description)),
				TitleEl(g.Text(props.Title)),
				StyleEl(g.Raw(stylesheet)),
			),
			Body(
				Div(Class("container"),
					siteHeader(),
					Main(
						g.Group(children),
					),
					siteFooter(),
				),
			),
		),
	)
}
