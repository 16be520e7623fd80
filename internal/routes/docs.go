package routes

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/viniciusfeitosaa/gymconnect-sub000/internal/config"
)

const docsIndexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    :root {
      color-scheme: light;
      --bg: #f6f7f4;
      --text: #132019;
      --muted: #536258;
      --accent: #1f6f4a;
      --border: #d8ddd6;
      --code-bg: #0f172a;
      --code-text: #e2e8f0;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      font-family: Georgia, "Times New Roman", serif;
      color: var(--text);
      background: var(--bg);
    }
    main { max-width: 960px; margin: 0 auto; padding: 48px 20px 64px; }
    h1 { margin: 0 0 8px; }
    p.lead { color: var(--muted); max-width: 42rem; }
    section {
      background: #fff;
      border: 1px solid var(--border);
      border-radius: 14px;
      padding: 20px 24px;
      margin-top: 20px;
    }
    h2 { margin-top: 0; font-size: 1.1rem; color: var(--accent); }
    table { width: 100%; border-collapse: collapse; font-size: 0.92rem; }
    td, th { text-align: left; padding: 6px 10px; border-bottom: 1px solid var(--border); }
    code {
      font-family: ui-monospace, SFMono-Regular, Menlo, monospace;
      background: var(--code-bg);
      color: var(--code-text);
      border-radius: 6px;
      padding: 2px 6px;
      font-size: 0.85em;
    }
  </style>
</head>
<body>
<main>
  <h1>{{ .Title }}</h1>
  <p class="lead">
    Coach accounts manage a student roster under their plan limit and compose
    workouts per student. Students read their workouts with an access code
    only; no password, no session.
  </p>

  <section>
    <h2>Auth</h2>
    <table>
      <tr><td><code>POST /api/auth/register</code></td><td>{name, email, password} &rarr; token + account. 409 on duplicate email.</td></tr>
      <tr><td><code>POST /api/auth/login</code></td><td>{email, password} &rarr; token. 401 is identical for unknown email and wrong password.</td></tr>
      <tr><td><code>GET /api/auth/me</code></td><td>account, plan and current student count.</td></tr>
    </table>
  </section>

  <section>
    <h2>Roster &amp; plans (Bearer token)</h2>
    <table>
      <tr><td><code>GET /api/v1/plans</code></td><td>plan catalog. <code>max_students: null</code> means unlimited.</td></tr>
      <tr><td><code>POST /api/v1/students</code></td><td>{name} &rarr; student with access code. 403 + {current, max} when the plan limit is reached.</td></tr>
      <tr><td><code>GET /api/v1/students</code></td><td>roster in creation order.</td></tr>
      <tr><td><code>DELETE /api/v1/students/:id</code></td><td>owned students only; otherwise 404. Linked workouts stay, unlinked.</td></tr>
      <tr><td><code>POST /api/v1/accounts/:id/plan</code></td><td>{plan_id} plan change. Existing students are never removed by a downgrade.</td></tr>
    </table>
  </section>

  <section>
    <h2>Workouts (Bearer token)</h2>
    <table>
      <tr><td><code>POST /api/v1/workouts</code></td><td>{student_id, name, description, exercises[]} written atomically; 400 leaves nothing behind.</td></tr>
      <tr><td><code>GET /api/v1/workouts</code></td><td>each entry carries <code>resolution</code>: <code>linked</code> or <code>round_robin</code> (legacy rows without a student link).</td></tr>
      <tr><td><code>GET /api/v1/workouts/:id</code></td><td>workout with exercises in insertion order.</td></tr>
      <tr><td><code>DELETE /api/v1/workouts/:id</code></td><td>owned workouts only; otherwise 404.</td></tr>
    </table>
  </section>

  <section>
    <h2>Student access (no auth)</h2>
    <table>
      <tr><td><code>GET /api/student-view/:code</code></td><td>student + their workouts. The code is the whole credential; unknown codes are a plain 404.</td></tr>
    </table>
  </section>
</main>
</body>
</html>`

func registerDocsRoutes(app *fiber.App, cfg *config.Config) error {
	if !cfg.DocsEnabled() {
		return nil
	}

	tmpl, err := template.New("docs").Parse(docsIndexHTML)
	if err != nil {
		return err
	}
	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, struct{ Title string }{Title: "GymConnect API"}); err != nil {
		return err
	}
	page := rendered.Bytes()

	app.Get("/docs", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		c.Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'")
		return c.Send(page)
	})

	return nil
}
