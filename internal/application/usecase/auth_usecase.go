package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sanmartincomanda/inventario/internal/domain"
	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
	"github.com/sanmartincomanda/inventario/pkg/jwt"
)

// AuthUseCase autentica usuarios y emite tokens con la sucursal del usuario
// como claim: toda operación posterior queda limitada a esa sucursal.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	branchRepo repository.BranchRepository

	secret     string
	issuer     string
	expMinutes int
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(userRepo repository.UserRepository, branchRepo repository.BranchRepository, secret, issuer string, expMinutes int) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		branchRepo: branchRepo,
		secret:     secret,
		issuer:     issuer,
		expMinutes: expMinutes,
	}
}

// Login valida las credenciales y devuelve un token firmado.
// Credenciales malas y usuario inexistente responden igual.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (token string, user *entity.User, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidInput
	}

	user, err = uc.userRepo.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrUnauthorized
	}

	token, err = jwt.Generate(uc.secret, user.ID, user.BranchID, uc.issuer, uc.expMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register crea un usuario asociado a una sucursal existente.
func (uc *AuthUseCase) Register(ctx context.Context, email, password, branchID string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 8 {
		return nil, domain.ErrInvalidInput
	}

	branch, err := uc.branchRepo.GetByID(branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNoBranch
	}

	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		BranchID:     branchID,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
