package web

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

const tokenKey = "jokepatra_admin_token"

const adminScript = `
(function () {
  var TOKEN_KEY = "` + tokenKey + `";
  var $ = function (id) { return document.getElementById(id); };
  var editing = null;

  function token() { return localStorage.getItem(TOKEN_KEY); }

  function api(method, url, body) {
    var opts = { method: method, headers: { "Authorization": "Bearer " + token() } };
    if (body instanceof FormData) {
      opts.body = body;
    } else if (body !== undefined) {
      opts.headers["Content-Type"] = "application/json";
      opts.body = JSON.stringify(body);
    }
    return fetch(url, opts).then(function (res) {
      return res.json().then(function (payload) {
        if (res.status === 401) { logout(); }
        if (!payload.success) { throw new Error(payload.error || "Request failed"); }
        return payload;
      });
    });
  }

  function show(loggedIn) {
    $("login-panel").classList.toggle("hidden", loggedIn);
    $("dashboard").classList.toggle("hidden", !loggedIn);
    if (loggedIn) { loadArticles(); }
  }

  function logout() {
    localStorage.removeItem(TOKEN_KEY);
    show(false);
  }

  function status(id, text, isError) {
    var el = $(id);
    el.textContent = text || "";
    el.className = isError ? "error" : "meta";
  }

  function cell(row, text) {
    var td = document.createElement("td");
    td.textContent = text;
    row.appendChild(td);
    return td;
  }

  function button(label, onClick) {
    var b = document.createElement("button");
    b.type = "button";
    b.textContent = label;
    b.addEventListener("click", onClick);
    return b;
  }

  function loadArticles() {
    api("GET", "/api/admin/articles?limit=100").then(function (payload) {
      var body = $("articles-body");
      body.innerHTML = "";
      payload.data.articles.forEach(function (a) {
        var row = document.createElement("tr");
        var title = cell(row, "");
        var link = document.createElement("a");
        link.href = "/news/" + a.slug;
        link.textContent = a.title;
        title.appendChild(link);
        cell(row, a.published_at ? "Published" : "Draft");
        cell(row, new Date(a.created_at).toLocaleString());
        var actions = cell(row, "");
        actions.appendChild(button(a.published_at ? "Unpublish" : "Publish", function () {
          api("PATCH", "/api/admin/articles/publish", { id: a.id, publish: !a.published_at })
            .then(loadArticles)
            .catch(function (err) { status("list-status", err.message, true); });
        }));
        actions.appendChild(button("Edit", function () { openEditor(a); }));
        actions.appendChild(button("Delete", function () {
          if (!confirm("Delete \"" + a.title + "\"? This cannot be undone.")) { return; }
          api("DELETE", "/api/admin/articles?id=" + encodeURIComponent(a.id))
            .then(loadArticles)
            .catch(function (err) { status("list-status", err.message, true); });
        }));
        body.appendChild(row);
      });
      status("list-status", payload.data.total + " articles");
    }).catch(function (err) { status("list-status", err.message, true); });
  }

  function upload(inputId, targetId, statusId) {
    var file = $(inputId).files[0];
    if (!file) { return; }
    var form = new FormData();
    form.append("file", file);
    status(statusId, "Uploading...");
    api("POST", "/api/admin/upload", form).then(function (payload) {
      $(targetId).value = payload.data.url;
      status(statusId, "Uploaded");
    }).catch(function (err) { status(statusId, err.message, true); });
  }

  function openEditor(a) {
    editing = a;
    $("edit-title").value = a.title;
    $("edit-slug").value = a.slug;
    $("edit-summary").value = a.summary || "";
    $("edit-content").value = a.content;
    $("edit-tags").value = (a.tags || []).join(", ");
    $("edit-language").value = a.language || "en";
    $("edit-image").value = a.featured_image || "";
    status("edit-status", "");
    $("editor").classList.remove("hidden");
  }

  $("login-form").addEventListener("submit", function (e) {
    e.preventDefault();
    fetch("/api/admin/login", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ email: $("login-email").value, password: $("login-password").value })
    }).then(function (res) { return res.json(); }).then(function (payload) {
      if (!payload.success) { throw new Error(payload.error); }
      localStorage.setItem(TOKEN_KEY, payload.data.token);
      status("login-status", "");
      show(true);
    }).catch(function (err) { status("login-status", err.message, true); });
  });

  $("generate-form").addEventListener("submit", function (e) {
    e.preventDefault();
    var body = { prompt: $("generate-prompt").value, publish: $("generate-publish").checked };
    if ($("generate-image").value) { body.featured_image = $("generate-image").value; }
    status("generate-status", "Generating... the satire muse is thinking.");
    api("POST", "/api/admin/articles/generate", body).then(function (payload) {
      status("generate-status", payload.message);
      $("generate-form").reset();
      loadArticles();
    }).catch(function (err) { status("generate-status", err.message, true); });
  });

  $("edit-form").addEventListener("submit", function (e) {
    e.preventDefault();
    if (!editing) { return; }
    var summary = $("edit-summary").value;
    var image = $("edit-image").value;
    var body = {
      title: $("edit-title").value,
      slug: $("edit-slug").value,
      summary: summary ? summary : null,
      content: $("edit-content").value,
      tags: $("edit-tags").value.split(",").map(function (t) { return t.trim(); }).filter(Boolean),
      language: $("edit-language").value,
      featured_image: image ? image : null
    };
    api("PATCH", "/api/admin/articles/" + encodeURIComponent(editing.id), body).then(function () {
      $("editor").classList.add("hidden");
      editing = null;
      loadArticles();
    }).catch(function (err) { status("edit-status", err.message, true); });
  });

  $("edit-cancel").addEventListener("click", function () {
    editing = null;
    $("editor").classList.add("hidden");
  });
  $("generate-file").addEventListener("change", function () { upload("generate-file", "generate-image", "generate-status"); });
  $("edit-file").addEventListener("change", function () { upload("edit-file", "edit-image", "edit-status"); });
  $("logout").addEventListener("click", logout);
  $("refresh").addEventListener("click", loadArticles);

  show(!!token());
})();
`

func field(label, id string, input g.Node) g.Node {
	return P(
		g.El("label", g.Attr("for", id), g.Text(label)),
		Br(),
		input,
	)
}

func loginPanel() g.Node {
	return Section(ID("login-panel"), Class("article"),
		H2(g.Text("Admin login")),
		Form(ID("login-form"),
			field("Email", "login-email", Input(Type("email"), ID("login-email"), Name("email"), Required())),
			field("Password", "login-password", Input(Type("password"), ID("login-password"), Name("password"), Required())),
			Button(Type("submit"), g.Text("Log in")),
			P(ID("login-status")),
		),
	)
}

func generatePanel() g.Node {
	return Section(Class("article"),
		H2(g.Text("Generate an article")),
		Form(ID("generate-form"),
			field("Prompt", "generate-prompt",
				Textarea(ID("generate-prompt"), Name("prompt"), g.Attr("rows", "4"), g.Attr("minlength", "10"), g.Attr("maxlength", "2000"), Required(),
					g.Attr("placeholder", "Write about the new flyover that connects nothing to nowhere"))),
			field("Featured image (optional)", "generate-file", Input(Type("file"), ID("generate-file"), g.Attr("accept", "image/*"))),
			Input(Type("hidden"), ID("generate-image")),
			P(g.El("label", Input(Type("checkbox"), ID("generate-publish")), g.Text(" Publish immediately"))),
			Button(Type("submit"), g.Text("Generate")),
			P(ID("generate-status")),
		),
	)
}

func articlesPanel() g.Node {
	return Section(Class("article"),
		H2(g.Text("Articles")),
		P(
			Button(Type("button"), ID("refresh"), g.Text("Refresh")),
			g.Text(" "),
			Span(ID("list-status")),
		),
		Table(
			THead(Tr(Th(g.Text("Title")), Th(g.Text("Status")), Th(g.Text("Created")), Th(g.Text("Actions")))),
			TBody(ID("articles-body")),
		),
	)
}

func editorPanel() g.Node {
	return Section(ID("editor"), Class("article hidden"),
		H2(g.Text("Edit article")),
		Form(ID("edit-form"),
			field("Title", "edit-title", Input(Type("text"), ID("edit-title"), Required())),
			field("Slug", "edit-slug", Input(Type("text"), ID("edit-slug"), g.Attr("pattern", "[a-z0-9-]+"), Required())),
			field("Summary", "edit-summary", Textarea(ID("edit-summary"), g.Attr("rows", "2"), g.Attr("maxlength", "500"))),
			field("Content (HTML)", "edit-content", Textarea(ID("edit-content"), g.Attr("rows", "12"), Required())),
			field("Tags (comma separated)", "edit-tags", Input(Type("text"), ID("edit-tags"))),
			field("Language", "edit-language", Select(ID("edit-language"),
				Option(Value("en"), g.Text("English")),
				Option(Value("ne"), g.Text("Nepali")),
			)),
			field("Featured image URL", "edit-image", Input(Type("text"), ID("edit-image"))),
			field("Replace image", "edit-file", Input(Type("file"), ID("edit-file"), g.Attr("accept", "image/*"))),
			Button(Type("submit"), g.Text("Save")),
			g.Text(" "),
			Button(Type("button"), ID("edit-cancel"), g.Text("Cancel")),
			P(ID("edit-status")),
		),
	)
}

// AdminPage is a static shell; the script drives everything through the JSON
// API with the token kept in localStorage.
func AdminPage() g.Node {
	return Layout(LayoutProps{Title: "Admin - jokePatra"},
		Div(Class("admin"),
			loginPanel(),
			Div(ID("dashboard"), Class("hidden"),
				P(Button(Type("button"), ID("logout"), g.Text("Log out"))),
				generatePanel(),
				articlesPanel(),
				editorPanel(),
			),
			Script(g.Raw(adminScript)),
		),
	)
}
