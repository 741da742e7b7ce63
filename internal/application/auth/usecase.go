package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
	"github.com/jhoicas/painel-ajuda/internal/domain"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
	"github.com/jhoicas/painel-ajuda/internal/domain/repository"
	"github.com/jhoicas/painel-ajuda/pkg/jwt"
	"github.com/jhoicas/painel-ajuda/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// notificationClearer descarta los avisos de una sesión anterior.
type notificationClearer interface {
	Clear() int
}

// AuthUseCase abre y cierra la sesión en la API remota y emite el token del painel.
//
// El proceso mantiene una única sesión remota (una cookie) y un único Store.
// Cada login genera un identificador de sesión nuevo que viaja en el token;
// los tokens emitidos para sesiones anteriores dejan de ser válidos.
type AuthUseCase struct {
	session repository.SessionRepository
	store   *viewstate.Store
	notes   notificationClearer
	jwtCfg  JWTConfig
	log     *logger.Logger

	// switchMu serializa login y logout: la cookie remota y current deben
	// cambiar juntas.
	switchMu sync.Mutex
	mu       sync.RWMutex
	current  string
}

// NewAuthUseCase construye el caso de uso de auth. notes puede ser nil.
func NewAuthUseCase(session repository.SessionRepository, store *viewstate.Store, notes notificationClearer, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{session: session, store: store, notes: notes, jwtCfg: jwtCfg, log: log.Component("auth")}
}

// Login valida las credenciales contra la API remota. Con éxito, vacía las
// cachés y los avisos de la sesión anterior, invalida sus tokens y genera el
// JWT del painel.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username e password são obrigatórios", domain.ErrInvalidInput)
	}

	uc.switchMu.Lock()
	defer uc.switchMu.Unlock()

	inst, err := uc.session.Login(ctx, username, in.Password)
	if err != nil {
		uc.log.Warn().Err(err).Str("username", username).Msg("login rechazado")
		return nil, err
	}
	sid := uuid.NewString()
	uc.switchSession(sid)

	role := roleOf(inst)
	token, err := jwt.Generate(uc.jwtCfg.Secret, strconv.FormatInt(inst.ID, 10), sid, inst.ID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("instituicao_id", inst.ID).Str("role", role).Msg("sesión abierta")
	return &dto.LoginResponse{Token: token, Role: role, Instituicao: *inst}, nil
}

// Logout cierra la sesión remota y vacía el Store. Las cachés se vacían aunque
// la API falle: los datos pertenecen a la sesión que se cierra.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	uc.switchMu.Lock()
	defer uc.switchMu.Unlock()

	err := uc.session.Logout(ctx)
	uc.switchSession("")
	if err != nil {
		uc.log.Warn().Err(err).Msg("logout remoto fallido; caché vaciada igualmente")
		return err
	}
	uc.log.Info().Msg("sesión cerrada")
	return nil
}

// IsCurrent indica si sessionID es la sesión remota vigente. Los tokens de
// Login siempre llevan un identificador no vacío.
func (uc *AuthUseCase) IsCurrent(sessionID string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return sessionID == uc.current
}

func (uc *AuthUseCase) switchSession(sid string) {
	uc.mu.Lock()
	uc.current = sid
	uc.mu.Unlock()
	uc.store.Reset()
	if uc.notes != nil {
		uc.notes.Clear()
	}
}

// Check consulta la sesión remota actual.
func (uc *AuthUseCase) Check(ctx context.Context) (*entity.SessionInstitution, error) {
	return uc.session.Check(ctx)
}

func roleOf(inst *entity.SessionInstitution) string {
	if inst.Admin {
		return jwt.RoleAdmin
	}
	return jwt.RoleInstituicao
}
