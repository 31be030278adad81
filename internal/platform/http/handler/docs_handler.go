package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// docsHTML は /docs で配信する簡易APIインデックスです。
const docsHTML = `<!DOCTYPE html>
<html>
<head><title>InvestMate API</title></head>
<body>
<h1>InvestMate API</h1>
<ul>
<li><code>GET /stock/{symbol}</code> - current quote for a symbol</li>
<li><code>GET /stock/{symbol}/details</code> - quote with one-year chart and performance metrics</li>
<li><code>GET /portfolio</code> - holdings with live valuation</li>
<li><code>POST /portfolio</code> - add a holding</li>
<li><code>PUT /portfolio/{id}</code> - update shares and/or average price</li>
<li><code>DELETE /portfolio/{id}</code> - remove a holding</li>
<li><code>GET /portfolio/summary</code> - aggregate cost, value and gain/loss</li>
<li><code>POST /chat</code> - talk to the AI investing assistant</li>
<li><code>GET /healthz</code> - liveness check</li>
</ul>
</body>
</html>`

// Docs はAPIドキュメントの /docs エンドポイントを処理します。
func Docs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsHTML))
}

// Root はルートパスをAPIドキュメントへリダイレクトします。
func Root(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "/docs")
}
