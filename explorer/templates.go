package explorer

// HTML templates for the explorer pages.
// These are embedded as strings and parsed at runtime.

const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>FireFly Explorer</title>
    <link rel="stylesheet" href="/static/style.css">
</head>
<body>
    <nav class="topbar">
        <a href="/" class="brand">FireFly Explorer</a>
        <div class="ns-picker">
            <span>Namespace:</span>
            {{range .Namespaces}}
            <a href="/namespaces/{{.Name}}" class="ns {{if eq .Name $.Namespace}}active{{end}}">{{.Name}}</a>
            {{end}}
        </div>
    </nav>
    <main class="content">
        {{.Content}}
    </main>
    <script src="/static/app.js"></script>
</body>
</html>`

const dashboardTemplate = `<h1>Dashboard <span class="muted">{{.Namespace}}</span></h1>
{{if .Loading}}<div class="loading">Loading…</div>{{end}}
<section class="panel">
    <div class="panel-head">
        <h2>Recent Messages</h2>
        <span class="muted">latest sequence {{.LatestSequence}}</span>
    </div>
    {{if .MessageRows}}
    <table>
        <thead><tr><th>ID</th><th>Type</th><th>Author</th><th>Topic</th><th>Created</th></tr></thead>
        <tbody>
        {{range .MessageRows}}
            <tr data-key="{{.Key}}" {{if .Link}}data-link="{{.Link}}" class="clickable"{{end}}>
            {{range .Cells}}{{template "cell" .}}{{end}}
            </tr>
        {{end}}
        </tbody>
    </table>
    {{else}}
    <div class="empty"></div>
    {{end}}
</section>
<section class="panel">
    <div class="panel-head"><h2>Recent Transactions (24h)</h2></div>
    {{if .TransactionRows}}
    <table>
        <thead><tr><th>ID</th><th>Sequence</th><th>Created</th></tr></thead>
        <tbody>
        {{range .TransactionRows}}
            <tr data-key="{{.Key}}" {{if .Link}}data-link="{{.Link}}" class="clickable"{{end}}>
            {{range .Cells}}{{template "cell" .}}{{end}}
            </tr>
        {{end}}
        </tbody>
    </table>
    {{else}}
    <div class="empty"></div>
    {{end}}
</section>`

const accountTemplate = `<h1>Token Account <span class="muted">{{.PoolProtocolID}}</span></h1>
{{if .Loading}}<div class="loading">Loading…</div>{{end}}
{{if .Account}}
<section class="panel">
    <dl class="detail">
        <dt>Pool</dt><dd>{{.Account.PoolProtocolID}}</dd>
        <dt>Token Index</dt><dd>{{orDash .Account.TokenIndex}}</dd>
        <dt>Connector</dt><dd>{{orDash .Account.Connector}}</dd>
        <dt>Key</dt><dd class="hash" data-full="{{.Account.Key}}">{{truncateHash .Account.Key 12}}</dd>
        <dt>Balance</dt><dd>{{orDash .Account.Balance}}</dd>
        <dt>Updated</dt><dd>{{formatTime .Account.Updated}}</dd>
    </dl>
</section>
{{end}}
<section class="panel">
    <div class="panel-head"><h2>Transfers</h2></div>
    {{if .TransferRows}}
    <table>
        <thead><tr><th></th><th>Tx</th><th>Amount</th><th>From</th><th>To</th><th>Created</th></tr></thead>
        <tbody>
        {{range .TransferRows}}
            <tr data-key="{{.Key}}">
            {{range .Cells}}{{template "cell" .}}{{end}}
            </tr>
        {{end}}
        </tbody>
    </table>
    <div class="pager">
        {{if gt .Pagination.CurrentPage 0}}<a href="?page={{sub .Pagination.CurrentPage 1}}&rows={{.Pagination.RowsPerPage}}">&laquo; Prev</a>{{end}}
        <span>Page {{add .Pagination.CurrentPage 1}}</span>
        {{if .HasNext}}<a href="?page={{add .Pagination.CurrentPage 1}}&rows={{.Pagination.RowsPerPage}}">Next &raquo;</a>{{end}}
        <span class="rows">
            Rows:
            {{range .RowOptions}}
            <a href="?rows={{.}}" {{if eq . $.Pagination.RowsPerPage}}class="active"{{end}}>{{.}}</a>
            {{end}}
        </span>
    </div>
    {{else}}
    <div class="empty">No transfers for this account yet.</div>
    {{end}}
</section>`

const messageTemplate = `<h1>Message</h1>
{{if .Detail.Message}}
{{with .Detail.Message}}
<section class="panel">
    <dl class="detail">
        <dt>ID</dt><dd class="hash" data-full="{{.Header.ID}}">{{.Header.ID}}</dd>
        <dt>Type</dt><dd>{{orDash .Header.Type}}</dd>
        <dt>Author</dt><dd class="hash" data-full="{{.Header.Author}}">{{orDash .Header.Author}}</dd>
        <dt>Topic</dt><dd>{{orDash .Header.Topic}}</dd>
        <dt>Context</dt><dd>{{orDash .Header.Context}}</dd>
        <dt>Data Hash</dt>
        <dd class="hash" data-full="{{.Header.DataHash}}">
            {{orDash .Header.DataHash}}
            {{if .Header.DataHash}}<button class="copy" data-copy="{{.Header.DataHash}}">Copy</button>{{end}}
        </dd>
        <dt>Created</dt><dd>{{formatTime .Header.Created}}</dd>
        <dt>Sequence</dt><dd>{{.Sequence}}</dd>
    </dl>
</section>
{{end}}
<section class="panel">
    <dl class="detail">
        <dt>Pinned</dt><dd>{{if .Detail.Pinned}}yes{{else}}no{{end}}</dd>
        {{if .Detail.TransactionID}}
        <dt>Transaction</dt>
        <dd><a href="/namespaces/{{.Namespace}}/transactions/{{.Detail.TransactionID}}">{{.Detail.TransactionID}}</a></dd>
        {{end}}
    </dl>
</section>
{{else}}
<div class="empty"></div>
{{end}}`

const transactionTemplate = `<h1>Transaction</h1>
{{if .Transaction}}
<section class="panel">
    <dl class="detail">
        <dt>ID</dt><dd class="hash" data-full="{{.Transaction.ID}}">{{.Transaction.ID}}</dd>
        <dt>Sequence</dt><dd>{{.Transaction.Sequence}}</dd>
        <dt>Created</dt><dd>{{formatTime .Transaction.Created}}</dd>
    </dl>
</section>
{{else}}
<div class="empty"></div>
{{end}}`

const cellTemplate = `{{if eq .Kind "hash"}}<td class="hash" data-full="{{.Full}}">{{.Value}}</td>
{{else if eq .Kind "icon"}}<td class="icon icon-{{.Value}}" title="{{.Value}}"></td>
{{else if eq .Kind "timestamp"}}<td class="ts">{{.Value}}</td>
{{else}}<td>{{.Value}}</td>{{end}}`
