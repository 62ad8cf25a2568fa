package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const swaggerPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Token-gated Music Node API</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({url: '/swagger/spec', dom_id: '#swagger-ui', layout: 'BaseLayout',
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset]});
  </script>
</body>
</html>`

// mountSwagger serves the UI and the raw OpenAPI document. Nothing is
// mounted when spec is empty.
func mountSwagger(r gin.IRouter, spec []byte) {
	if len(spec) == 0 {
		return
	}
	g := r.Group("/swagger")
	g.GET("", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerPage))
	})
	g.GET("/spec", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", spec)
	})
}
