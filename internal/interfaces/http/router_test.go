package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/painel-ajuda/internal/application/auth"
	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/application/notify"
	"github.com/jhoicas/painel-ajuda/internal/application/usecase"
	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
	"github.com/jhoicas/painel-ajuda/internal/infrastructure/api"
	apphttp "github.com/jhoicas/painel-ajuda/internal/interfaces/http"
	"github.com/jhoicas/painel-ajuda/pkg/config"
	pkgjwt "github.com/jhoicas/painel-ajuda/pkg/jwt"
	"github.com/jhoicas/painel-ajuda/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Aplicación completa contra una API remota simulada
// ──────────────────────────────────────────────────────────────────────────────

type upstream struct {
	mu     sync.Mutex
	bodies map[string]string // "MÉTODO ruta" → cuerpo JSON (HTTP 200)
	hits   map[string]int
}

func (u *upstream) set(route, body string) {
	u.mu.Lock()
	u.bodies[route] = body
	u.mu.Unlock()
}

func (u *upstream) count(route string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hits[route]
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " " + r.URL.Path
	u.mu.Lock()
	u.hits[route]++
	body, ok := u.bodies[route]
	u.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"rota inexistente"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

type testEnv struct {
	app      *fiber.App
	upstream *upstream
	store    *viewstate.Store
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	up := &upstream{bodies: map[string]string{}, hits: map[string]int{}}
	srv := httptest.NewServer(up)
	t.Cleanup(srv.Close)
	return newEnvWithURL(t, srv.URL, up)
}

func newEnvWithURL(t *testing.T, url string, up *upstream) *testEnv {
	t.Helper()
	log := logger.Nop()
	client := api.NewClient(config.UpstreamConfig{BaseURL: url, Timeout: 2 * time.Second}, log)

	store := viewstate.NewStore(nil)
	center := notify.NewCenter(time.Minute, nil)
	benefRepo := api.NewBeneficiaryRepository(client)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Store:         store,
		Notifications: center,
		AuthUC: auth.NewAuthUseCase(api.NewSessionRepository(client), store, center,
			auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, log),
		InstitutionUC: usecase.NewInstitutionUseCase(api.NewInstitutionRepository(client), store, center, log),
		BeneficiaryUC: usecase.NewBeneficiaryUseCase(benefRepo, store, center, log),
		StockUC:       usecase.NewStockUseCase(api.NewStockRepository(client), benefRepo, nil, store, center, log),
		ReportUC:      usecase.NewReportUseCase(api.NewReportRepository(client), nil, store, center, log),
		DashboardUC:   usecase.NewDashboardUseCase(api.NewDashboardRepository(client), store, center, log),
		EquityUC:      usecase.NewEquityUseCase(api.NewEquityRepository(client), store, center, log),
		JWTSecret:     testJWTSecret,
	})
	return &testEnv{app: app, upstream: up, store: store}
}

func (e *testEnv) do(t *testing.T, method, path, role, body string) (int, []byte) {
	t.Helper()
	header := ""
	if role != "" {
		header = tokenForRole(t, role)
	}
	return e.doAuth(t, method, path, header, body)
}

// doAuth como do, con la cabecera Authorization tal cual.
func (e *testEnv) doAuth(t *testing.T, method, path, authorization, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decodeInto[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

const twoPendingJSON = `{"success":true,"instituicoes":[
	{"id":1,"nome":"Cáritas","estado":"Pendente","pode_eliminar":true},
	{"id":2,"nome":"Banco Alimentar","estado":"Pendente","pode_eliminar":true}]}`

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestPanel_CargaPerezosaUnaSolaVez(t *testing.T) {
	e := newEnv(t)
	e.upstream.set("GET /api/auth/admin/instituicoes", twoPendingJSON)

	status, raw := e.do(t, http.MethodGet, "/api/instituicoes", pkgjwt.RoleAdmin, "")
	require.Equal(t, http.StatusOK, status, string(raw))
	view := decodeInto[dto.InstitutionPanelView](t, raw)
	assert.Len(t, view.Instituicoes, 2)
	assert.Equal(t, "Pendente", view.ActiveTab)

	status, _ = e.do(t, http.MethodGet, "/api/instituicoes?estado=Aprovada", pkgjwt.RoleAdmin, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, e.upstream.count("GET /api/auth/admin/instituicoes"), "la segunda lectura sale de la caché")
}

func TestApprove_ConfirmadoMueveDePestana(t *testing.T) {
	e := newEnv(t)
	e.upstream.set("GET /api/auth/admin/instituicoes", twoPendingJSON)
	e.upstream.set("POST /api/auth/admin/aprovar-instituicao/1", `{"success":true}`)
	e.do(t, http.MethodPost, "/api/instituicoes/refresh", pkgjwt.RoleAdmin, "")

	status, raw := e.do(t, http.MethodPost, "/api/instituicoes/1/aprovar", pkgjwt.RoleAdmin, "")
	require.Equal(t, http.StatusOK, status, string(raw))
	view := decodeInto[dto.InstitutionPanelView](t, raw)
	require.Len(t, view.Instituicoes, 1)
	assert.Equal(t, int64(2), view.Instituicoes[0].ID)
}

func TestApprove_RechazadoDevuelve422YNotifica(t *testing.T) {
	e := newEnv(t)
	e.upstream.set("GET /api/auth/admin/instituicoes", twoPendingJSON)
	e.upstream.set("POST /api/auth/admin/aprovar-instituicao/1", `{"success":false,"error":"x"}`)
	e.do(t, http.MethodPost, "/api/instituicoes/refresh", pkgjwt.RoleAdmin, "")

	status, raw := e.do(t, http.MethodPost, "/api/instituicoes/1/aprovar", pkgjwt.RoleAdmin, "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	errBody := decodeInto[dto.ErrorResponse](t, raw)
	assert.Equal(t, "REJECTED", errBody.Code)
	assert.Equal(t, "x", errBody.Message)

	_, raw = e.do(t, http.MethodGet, "/api/instituicoes", pkgjwt.RoleAdmin, "")
	assert.Len(t, decodeInto[dto.InstitutionPanelView](t, raw).Instituicoes, 2, "la caché no cambió")

	_, raw = e.do(t, http.MethodGet, "/api/notificacoes", pkgjwt.RoleAdmin, "")
	notifs := decodeInto[dto.NotificationListView](t, raw).Notificacoes
	require.Len(t, notifs, 1)
	assert.Equal(t, notify.LevelError, notifs[0].Level)
	assert.Equal(t, "x", notifs[0].Message)

	status, _ = e.do(t, http.MethodDelete, "/api/notificacoes/"+notifs[0].ID, pkgjwt.RoleAdmin, "")
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = e.do(t, http.MethodDelete, "/api/notificacoes/"+notifs[0].ID, pkgjwt.RoleAdmin, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestReject_SinMotivoEs400(t *testing.T) {
	e := newEnv(t)
	status, raw := e.do(t, http.MethodPost, "/api/instituicoes/1/rejeitar", pkgjwt.RoleAdmin, `{"motivo":"  "}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", decodeInto[dto.ErrorResponse](t, raw).Code)
	assert.Zero(t, e.upstream.count("POST /api/auth/admin/rejeitar-instituicao/1"))
}

func TestIdInvalido(t *testing.T) {
	e := newEnv(t)
	status, raw := e.do(t, http.MethodPost, "/api/instituicoes/abc/aprovar", pkgjwt.RoleAdmin, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_ID", decodeInto[dto.ErrorResponse](t, raw).Code)
}

func TestPanel_SoloAdmin(t *testing.T) {
	e := newEnv(t)
	status, _ := e.do(t, http.MethodGet, "/api/instituicoes", pkgjwt.RoleInstituicao, "")
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = e.do(t, http.MethodGet, "/api/instituicoes", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestApiCaida_Es502(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	e := newEnvWithURL(t, url, nil)

	status, raw := e.do(t, http.MethodGet, "/api/beneficiarios", pkgjwt.RoleInstituicao, "")
	assert.Equal(t, http.StatusBadGateway, status)
	errBody := decodeInto[dto.ErrorResponse](t, raw)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", errBody.Code)
	assert.Equal(t, "Erro de conexão", errBody.Message)

	_, loaded := e.store.LoadedAt(viewstate.KindBeneficiaries)
	assert.False(t, loaded, "una carga fallida no marca la colección como cargada")
}

func TestLogin_Publico(t *testing.T) {
	e := newEnv(t)
	e.upstream.set("POST /api/auth/login", `{"success":true,"instituicao":{"id":1,"nome":"Administração","admin":true}}`)

	status, raw := e.do(t, http.MethodPost, "/api/auth/login", "", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, status, string(raw))
	resp := decodeInto[dto.LoginResponse](t, raw)
	assert.Equal(t, pkgjwt.RoleAdmin, resp.Role)

	claims, err := pkgjwt.Parse(testJWTSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.InstitutionID)
}

func TestLogin_CredencialesInvalidasEs401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"error":"Credenciais inválidas"}`))
	}))
	t.Cleanup(srv.Close)
	e := newEnvWithURL(t, srv.URL, nil)

	status, raw := e.do(t, http.MethodPost, "/api/auth/login", "", `{"username":"admin","password":"mal"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Credenciais inválidas", decodeInto[dto.ErrorResponse](t, raw).Message)
}

func TestMovimientos_TipoInvalido(t *testing.T) {
	e := newEnv(t)
	e.upstream.set("GET /api/stock/movimentos", `{"success":true,"movimentos":[{"id":1,"tipo_movimento":"entrada","quantidade":3}]}`)

	status, raw := e.do(t, http.MethodGet, "/api/stock/movimentos?tipo=entrada", pkgjwt.RoleInstituicao, "")
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, 1, decodeInto[dto.MovementListView](t, raw).Total)

	status, _ = e.do(t, http.MethodGet, "/api/stock/movimentos?tipo=ajuste", pkgjwt.RoleInstituicao, "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSaida_RequiereConfirmacionEs200(t *testing.T) {
	e := newEnv(t)
	e.upstream.set("POST /api/stock/saida", `{"requer_confirmacao":true,"alertas":["Recebeu há 2 dias"]}`)

	status, raw := e.do(t, http.MethodPost, "/api/stock/saida", pkgjwt.RoleInstituicao,
		`{"item_id":1,"quantidade":"2","beneficiario_nif":"123456789"}`)
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.True(t, decodeInto[map[string]any](t, raw)["requer_confirmacao"].(bool))
	assert.Zero(t, e.upstream.count("GET /api/stock/itens"), "sin movimiento no se recarga el catálogo")
}

func login(t *testing.T, e *testEnv) string {
	t.Helper()
	status, raw := e.do(t, http.MethodPost, "/api/auth/login", "", `{"username":"u","password":"p"}`)
	require.Equal(t, http.StatusOK, status, string(raw))
	return "Bearer " + decodeInto[dto.LoginResponse](t, raw).Token
}

func TestLogin_SegundaInstitucionInvalidaTokenAnterior(t *testing.T) {
	e := newEnv(t)
	e.upstream.set("GET /api/stock/movimentos", `{"success":true,"movimentos":[{"id":1,"tipo_movimento":"Entrada","quantidade":3}]}`)

	e.upstream.set("POST /api/auth/login", `{"success":true,"instituicao":{"id":7,"nome":"Cáritas"}}`)
	t7 := login(t, e)
	status, raw := e.doAuth(t, http.MethodGet, "/api/stock/movimentos", t7, "")
	require.Equal(t, http.StatusOK, status, string(raw))

	e.upstream.set("POST /api/auth/login", `{"success":true,"instituicao":{"id":9,"nome":"Banco Alimentar"}}`)
	t9 := login(t, e)

	status, raw = e.doAuth(t, http.MethodGet, "/api/stock/movimentos", t7, "")
	assert.Equal(t, http.StatusUnauthorized, status, "el token de la institución 7 ya no ve la sesión de la 9")
	assert.Equal(t, "SESSION_REPLACED", decodeInto[dto.ErrorResponse](t, raw).Code)

	status, raw = e.doAuth(t, http.MethodGet, "/api/stock/movimentos", t9, "")
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, 2, e.upstream.count("GET /api/stock/movimentos"), "la caché de la sesión anterior se descartó")

	status, _ = e.do(t, http.MethodGet, "/api/stock/movimentos", pkgjwt.RoleInstituicao, "")
	assert.Equal(t, http.StatusUnauthorized, status, "un token sin sesión tampoco pasa")
}

func TestLogout_InvalidaToken(t *testing.T) {
	e := newEnv(t)
	e.upstream.set("POST /api/auth/login", `{"success":true,"instituicao":{"id":7,"nome":"Cáritas"}}`)
	e.upstream.set("POST /api/auth/logout", `{"success":true}`)
	tok := login(t, e)

	status, raw := e.doAuth(t, http.MethodPost, "/api/auth/logout", tok, "")
	require.Equal(t, http.StatusOK, status, string(raw))

	status, _ = e.doAuth(t, http.MethodGet, "/api/auth/me", tok, "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestDashboard_CargaPerezosa(t *testing.T) {
	e := newEnv(t)
	e.upstream.set("GET /api/dashboard/stats", `{"success":true,"stats":{"sistema":{"total_beneficiarios":3},"instituicao":{"nome":"Cáritas"}}}`)
	e.upstream.set("GET /api/dashboard/atividade-recente", `{"success":true,"atividades":[]}`)
	e.upstream.set("GET /api/dashboard/alertas", `{"success":true,"alertas":[{"tipo":"warning","titulo":"Stock Baixo","mensagem":"1 item"}]}`)

	status, raw := e.do(t, http.MethodGet, "/api/dashboard", pkgjwt.RoleInstituicao, "")
	require.Equal(t, http.StatusOK, status, string(raw))
	view := decodeInto[dto.DashboardView](t, raw)
	assert.Equal(t, 3, view.Stats.Sistema.TotalBeneficiarios)
	require.Len(t, view.Alertas, 1)

	e.do(t, http.MethodGet, "/api/dashboard", pkgjwt.RoleInstituicao, "")
	assert.Equal(t, 1, e.upstream.count("GET /api/dashboard/stats"))
}

func TestAlertas_MenosAjuda_LimiteInvalido(t *testing.T) {
	e := newEnv(t)
	e.upstream.set("GET /api/alertas/beneficiarios-menos-ajuda", `{"success":true,"beneficiarios":[{"nif":"1","nome":"Ana"}]}`)

	status, raw := e.do(t, http.MethodGet, "/api/alertas/menos-ajuda?categoria=higiene", pkgjwt.RoleInstituicao, "")
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, 1, decodeInto[dto.LeastHelpedView](t, raw).Total)

	for _, q := range []string{"abc", "0", "500"} {
		status, _ = e.do(t, http.MethodGet, "/api/alertas/menos-ajuda?limite="+q, pkgjwt.RoleInstituicao, "")
		assert.Equal(t, http.StatusBadRequest, status, q)
	}
	assert.Equal(t, 1, e.upstream.count("GET /api/alertas/beneficiarios-menos-ajuda"))
}

func TestRelatorioPorMes_VistaPrevia(t *testing.T) {
	e := newEnv(t)
	e.upstream.set("GET /api/relatorios/mensal/por-mes/2025/3", `{"success":true,"existe":false,"relatorio":{"ano":2025,"mes":3}}`)

	status, raw := e.do(t, http.MethodGet, "/api/relatorios/2025/3", pkgjwt.RoleInstituicao, "")
	require.Equal(t, http.StatusOK, status, string(raw))
	view := decodeInto[dto.MonthlyReportView](t, raw)
	assert.False(t, view.Guardado)
	assert.Equal(t, 3, view.Relatorio.Mes)

	status, _ = e.do(t, http.MethodGet, "/api/relatorios/2025/13", pkgjwt.RoleInstituicao, "")
	assert.Equal(t, http.StatusBadRequest, status)
}
