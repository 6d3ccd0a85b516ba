// Package render turns view-models into HTML or JSON responses.
package render

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"retail-crud/internal/retail"
)

const (
	IndexTemplate   = "index.html"
	ListingTemplate = "listing.html"
	AnotherTemplate = "another.html"
	ErrorTemplate   = "error.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page set for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

var offered = []string{binding.MIMEHTML, binding.MIMEJSON}

// nav is the resource menu shown on every page.
var nav = func() []string {
	var resources []string
	for _, l := range retail.Listings {
		if l.Resource != retail.IndexResource {
			resources = append(resources, l.Resource)
		}
	}
	return append(resources, "another")
}()

// Page negotiates between the named template with htmlData and the
// {"success":true,"data":...} JSON envelope.
func Page(c *gin.Context, code int, name string, htmlData gin.H, data interface{}) {
	if htmlData == nil {
		htmlData = gin.H{}
	}
	htmlData["Nav"] = nav

	c.Negotiate(code, gin.Negotiate{
		Offered:  offered,
		HTMLName: name,
		HTMLData: htmlData,
		JSONData: gin.H{
			"success": true,
			"data":    data,
		},
	})
}

// Error aborts the chain with code and message in the negotiated format.
func Error(c *gin.Context, code int, message string) {
	c.Abort()
	c.Negotiate(code, gin.Negotiate{
		Offered:  offered,
		HTMLName: ErrorTemplate,
		HTMLData: gin.H{
			"Title":   http.StatusText(code),
			"Code":    code,
			"Message": message,
			"Nav":     nav,
		},
		JSONData: gin.H{
			"success": false,
			"error":   message,
		},
	})
}
