package v1

import (
	"net/http"
	"strings"

	"edu-finder-backend/internal/delivery/http/response"
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/internal/filter"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUC domain.CatalogUsecase
}

func NewCatalogHandler(r *gin.RouterGroup, catalogUC domain.CatalogUsecase) {
	handler := &CatalogHandler{catalogUC: catalogUC}

	catalogs := r.Group("/catalogs")
	{
		catalogs.GET("", handler.ListCatalogs)
		catalogs.GET("/:name", handler.Search)
	}
	r.GET("/recommendations", handler.Recommendations)
}

// ListCatalogs godoc
// @Summary      List catalogs
// @Description  Catalog names, sizes and the filter controls each one supports
// @Tags         catalogs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.CatalogInfo}
// @Router       /catalogs [get]
func (h *CatalogHandler) ListCatalogs(c *gin.Context) {
	response.Success(c, http.StatusOK, "Catalogs", h.catalogUC.ListCatalogs(c.Request.Context()))
}

// Search godoc
// @Summary      Search a catalog
// @Description  Free-text search plus one query parameter per select filter (e.g. state=Karnataka). Flags are passed as flag=girlsOnly, repeated or comma separated.
// @Tags         catalogs
// @Produce      json
// @Param        name  path      string  true   "Catalog name"
// @Param        q     query     string  false  "Free text"
// @Param        flag  query     []string  false  "Enabled flags"  collectionFormat(multi)
// @Success      200   {object}  response.Response{data=domain.SearchResult}
// @Failure      404   {object}  response.Response
// @Router       /catalogs/{name} [get]
// @Security     ClientToken
func (h *CatalogHandler) Search(c *gin.Context) {
	result, err := h.catalogUC.Search(c.Request.Context(), clientID(c), c.Param("name"), parseQuery(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Search results", result)
}

// Recommendations godoc
// @Summary      Recommendations
// @Description  Every opportunity tagged eligible or may-qualify for the stored profile
// @Tags         catalogs
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SearchResult}
// @Router       /recommendations [get]
// @Security     ClientToken
func (h *CatalogHandler) Recommendations(c *gin.Context) {
	result, err := h.catalogUC.Recommendations(c.Request.Context(), clientID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recommendations", result)
}

// parseQuery maps URL parameters onto a filter.Query. Every parameter other
// than q and flag is treated as a select filter; the catalog ignores names it
// does not know.
func parseQuery(c *gin.Context) filter.Query {
	values := c.Request.URL.Query()
	q := filter.Query{Text: values.Get("q")}

	for name, vals := range values {
		if name == "q" || name == "flag" || len(vals) == 0 {
			continue
		}
		if q.Fields == nil {
			q.Fields = map[string]string{}
		}
		q.Fields[name] = vals[0]
	}

	for _, raw := range values["flag"] {
		for _, flag := range strings.Split(raw, ",") {
			if flag = strings.TrimSpace(flag); flag != "" {
				if q.Flags == nil {
					q.Flags = map[string]bool{}
				}
				q.Flags[flag] = true
			}
		}
	}
	return q
}
