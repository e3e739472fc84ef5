// Package dashboard renders the statistics dashboard as server-side HTML.
package dashboard

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/statsboard/internal/application/statistics/usecases"
	domain "github.com/orris-inc/statsboard/internal/domain/dashboard"
	"github.com/orris-inc/statsboard/internal/interfaces/http/handlers/common"
	"github.com/orris-inc/statsboard/internal/shared/logger"
	"github.com/orris-inc/statsboard/internal/shared/utils"
)

const (
	PagePath     = "/dashboard/statistics"
	FragmentPath = "/dashboard/statistics/traffic-ranking"
	AssetsPath   = "/dashboard/assets"

	htmlContentType = "text/html; charset=utf-8"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// PageHandler serves the dashboard page and its ranking fragment.
type PageHandler struct {
	statisticsUseCase *usecases.GetStatisticsUseCase
	rankingUseCase    *usecases.GetTrafficRankingUseCase
	templates         *template.Template
	logger            logger.Interface
}

// NewPageHandler parses the embedded templates.
func NewPageHandler(
	statisticsUC *usecases.GetStatisticsUseCase,
	rankingUC *usecases.GetTrafficRankingUseCase,
	logger logger.Interface,
) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard templates: %w", err)
	}
	return &PageHandler{
		statisticsUseCase: statisticsUC,
		rankingUseCase:    rankingUC,
		templates:         tmpl,
		logger:            logger,
	}, nil
}

// Assets returns the stylesheet and script served under AssetsPath.
func Assets() http.FileSystem {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

type pageView struct {
	Lang       string
	Title      string
	AssetsPath string
	Tiles      []domain.Tile
	Ranking    rankingView
}

// rankingView is the ranking card plus the links that change its selection.
type rankingView struct {
	Chart     domain.TrafficChart
	Selection domain.Selection
	// Lang is the explicitly requested language, kept in generated links.
	Lang     string
	PagePath string
}

func newRankingView(chart domain.TrafficChart, lang string) rankingView {
	return rankingView{
		Chart:     chart,
		Selection: chart.Selection,
		Lang:      lang,
		PagePath:  PagePath,
	}
}

func (v rankingView) DataType() string {
	return string(v.Selection.DataType)
}

func (v rankingView) TimeFrame() string {
	return string(v.Selection.TimeFrame)
}

// TimeFramePageURL links the full page with the time frame switched.
func (v rankingView) TimeFramePageURL(frame string) string {
	return v.link(PagePath, v.Selection.WithTimeFrame(domain.TimeFrame(frame)))
}

// TimeFrameFragmentURL links the ranking fragment with the time frame switched.
func (v rankingView) TimeFrameFragmentURL(frame string) string {
	return v.link(FragmentPath, v.Selection.WithTimeFrame(domain.TimeFrame(frame)))
}

// DataTypePageURL links the full page with the data type switched.
func (v rankingView) DataTypePageURL(dataType string) string {
	return v.link(PagePath, v.Selection.WithDataType(domain.DataType(dataType)))
}

// DataTypeFragmentURL links the ranking fragment with the data type switched.
func (v rankingView) DataTypeFragmentURL(dataType string) string {
	return v.link(FragmentPath, v.Selection.WithDataType(domain.DataType(dataType)))
}

func (v rankingView) link(path string, sel domain.Selection) string {
	q := url.Values{}
	q.Set("type", string(sel.DataType))
	q.Set("range", string(sel.TimeFrame))
	if v.Lang != "" {
		q.Set("lang", v.Lang)
	}
	return path + "?" + q.Encode()
}

// BarTitle is the hover text of a bar: the row, its email for users, and its value.
func (v rankingView) BarTitle(bar domain.Bar) string {
	lines := []string{bar.Tooltip}
	if bar.Email != nil {
		lines = append(lines, v.Chart.EmailLabel+": "+*bar.Email)
	}
	lines = append(lines, v.Chart.SeriesLabel+": "+bar.TooltipValue)
	return strings.Join(lines, "\n")
}

// GetStatisticsPage handles GET /dashboard/statistics
func (h *PageHandler) GetStatisticsPage(c *gin.Context) {
	req, sel, err := common.BindSelection(c)
	if err != nil {
		h.logger.Warnw("invalid statistics query", "query", c.Request.URL.RawQuery, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.statisticsUseCase.Execute(c.Request.Context(), usecases.GetStatisticsQuery{
		Selection:      sel,
		Lang:           req.Lang,
		AcceptLanguage: c.GetHeader("Accept-Language"),
	})
	if err != nil {
		h.logger.Errorw("failed to build statistics page", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.render(c, "statistics", pageView{
		Lang:       result.Lang,
		Title:      result.Title,
		AssetsPath: AssetsPath,
		Tiles:      result.Tiles,
		Ranking:    newRankingView(result.Chart, req.Lang),
	})
}

// GetTrafficRankingFragment handles GET /dashboard/statistics/traffic-ranking
func (h *PageHandler) GetTrafficRankingFragment(c *gin.Context) {
	req, sel, err := common.BindSelection(c)
	if err != nil {
		h.logger.Warnw("invalid traffic ranking query", "query", c.Request.URL.RawQuery, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.rankingUseCase.Execute(c.Request.Context(), usecases.GetTrafficRankingQuery{
		Selection:      sel,
		Lang:           req.Lang,
		AcceptLanguage: c.GetHeader("Accept-Language"),
	})
	if err != nil {
		h.logger.Errorw("failed to build traffic ranking", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.render(c, "ranking", newRankingView(result.Chart, req.Lang))
}

// render executes into a buffer so a template failure never leaves a half-written page.
func (h *PageHandler) render(c *gin.Context, name string, data any) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Errorw("failed to render template", "template", name, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}
