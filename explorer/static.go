package explorer

// Static assets for the explorer, embedded as strings.

// getStaticAsset returns a static asset by name, with its content type.
func getStaticAsset(name string) (content string, contentType string, ok bool) {
	switch name {
	case "style.css":
		return cssStyles, "text/css", true
	case "app.js":
		return jsApp, "application/javascript", true
	default:
		return "", "", false
	}
}

const cssStyles = `
:root {
    --bg: #111827;
    --panel: #1f2937;
    --border: #374151;
    --text: #f9fafb;
    --muted: #9ca3af;
    --accent: #3b82f6;
}

body {
    margin: 0;
    background: var(--bg);
    color: var(--text);
    font-family: -apple-system, "Segoe UI", Roboto, sans-serif;
}

.topbar {
    display: flex;
    align-items: center;
    gap: 2rem;
    padding: 0 1.5rem;
    height: 3.5rem;
    background: var(--panel);
    border-bottom: 1px solid var(--border);
}

.brand { color: var(--text); font-weight: 700; text-decoration: none; }

.ns-picker { color: var(--muted); font-size: 0.9rem; }
.ns-picker a { color: var(--muted); margin-left: 0.5rem; text-decoration: none; }
.ns-picker a.active { color: var(--accent); }

.content { max-width: 64rem; margin: 0 auto; padding: 1.5rem; }

.muted { color: var(--muted); font-weight: 400; font-size: 0.9em; }

.panel {
    background: var(--panel);
    border: 1px solid var(--border);
    border-radius: 0.5rem;
    padding: 1rem 1.25rem;
    margin-bottom: 1.5rem;
}

.panel-head { display: flex; justify-content: space-between; align-items: baseline; }
.panel h2 { font-size: 1rem; margin: 0 0 0.75rem; }

table { width: 100%; border-collapse: collapse; font-size: 0.9rem; }
th { text-align: left; color: var(--muted); font-weight: 500; padding: 0.4rem 0.6rem; }
td { padding: 0.4rem 0.6rem; border-top: 1px solid var(--border); }
tr.clickable { cursor: pointer; }
tr.clickable:hover { background: rgba(59, 130, 246, 0.08); }

.hash { font-family: ui-monospace, Menlo, Consolas, monospace; }
.ts { color: var(--muted); white-space: nowrap; }

.icon { width: 1.5rem; }
.icon::before { display: inline-block; }
.icon-mint::before { content: "\2295"; color: #10b981; }
.icon-burn::before { content: "\2297"; color: #ef4444; }
.icon-transfer::before { content: "\21C4"; color: var(--accent); }
.icon-unknown::before { content: "?"; color: var(--muted); }

.detail { display: grid; grid-template-columns: 10rem 1fr; gap: 0.4rem 1rem; margin: 0; }
.detail dt { color: var(--muted); }
.detail dd { margin: 0; overflow-wrap: anywhere; }

.copy {
    margin-left: 0.5rem;
    background: none;
    border: 1px solid var(--border);
    border-radius: 0.25rem;
    color: var(--muted);
    font-size: 0.75rem;
    cursor: pointer;
}
.copy:hover { color: var(--text); border-color: var(--accent); }

.pager { margin-top: 0.75rem; font-size: 0.9rem; color: var(--muted); }
.pager a { color: var(--accent); text-decoration: none; margin: 0 0.25rem; }
.pager .rows { margin-left: 1.5rem; }
.pager .rows a.active { color: var(--text); }

.loading { color: var(--muted); padding: 0.5rem 0; }
.empty { color: var(--muted); padding: 0.75rem 0; min-height: 1rem; }
`

const jsApp = `
document.addEventListener('click', function (e) {
    var btn = e.target.closest('.copy');
    if (btn) {
        navigator.clipboard.writeText(btn.dataset.copy).then(function () {
            btn.textContent = 'Copied';
            setTimeout(function () { btn.textContent = 'Copy'; }, 1200);
        });
        e.stopPropagation();
        return;
    }
    var row = e.target.closest('tr[data-link]');
    if (row) {
        window.location.href = row.dataset.link;
    }
});
`
