package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
	"github.com/leadwind/dopebook-backend/internal/service/ammo"
	"github.com/leadwind/dopebook-backend/internal/service/auth"
	"github.com/leadwind/dopebook-backend/internal/service/dopelog"
	"github.com/leadwind/dopebook-backend/internal/service/environment"
	"github.com/leadwind/dopebook-backend/internal/service/rifle"
)

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
}

var _ authService = &authServiceMock{}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	return m.LoginFunc(ctx, input)
}

type rifleServiceMock struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, input rifle.CreateInput) (*domain.RifleProfile, error)
	GetFunc    func(ctx context.Context, userID, rifleID uuid.UUID) (*domain.RifleProfile, error)
	UpdateFunc func(ctx context.Context, userID, rifleID uuid.UUID, input rifle.UpdateInput) (*domain.RifleProfile, error)
	DeleteFunc func(ctx context.Context, userID, rifleID uuid.UUID) error
	ListFunc   func(ctx context.Context, userID uuid.UUID, input rifle.ListInput) (*rifle.ListResult, error)
	StatsFunc  func(ctx context.Context, userID, rifleID uuid.UUID) (domain.RifleStats, error)
}

var _ rifleService = &rifleServiceMock{}

func (m *rifleServiceMock) Create(ctx context.Context, userID uuid.UUID, input rifle.CreateInput) (*domain.RifleProfile, error) {
	return m.CreateFunc(ctx, userID, input)
}

func (m *rifleServiceMock) Get(ctx context.Context, userID, rifleID uuid.UUID) (*domain.RifleProfile, error) {
	return m.GetFunc(ctx, userID, rifleID)
}

func (m *rifleServiceMock) Update(ctx context.Context, userID, rifleID uuid.UUID, input rifle.UpdateInput) (*domain.RifleProfile, error) {
	return m.UpdateFunc(ctx, userID, rifleID, input)
}

func (m *rifleServiceMock) Delete(ctx context.Context, userID, rifleID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, rifleID)
}

func (m *rifleServiceMock) List(ctx context.Context, userID uuid.UUID, input rifle.ListInput) (*rifle.ListResult, error) {
	return m.ListFunc(ctx, userID, input)
}

func (m *rifleServiceMock) Stats(ctx context.Context, userID, rifleID uuid.UUID) (domain.RifleStats, error) {
	return m.StatsFunc(ctx, userID, rifleID)
}

type dopeLogServiceMock struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, input dopelog.CreateInput) (*domain.DopeLog, error)
	GetFunc    func(ctx context.Context, userID, logID uuid.UUID) (*domain.DopeLog, error)
	UpdateFunc func(ctx context.Context, userID, logID uuid.UUID, input dopelog.UpdateInput) (*domain.DopeLog, error)
	DeleteFunc func(ctx context.Context, userID, logID uuid.UUID) error
	ListFunc   func(ctx context.Context, userID uuid.UUID, input dopelog.ListInput) (*dopelog.ListResult, error)
	CardFunc   func(ctx context.Context, userID, rifleID, ammoID uuid.UUID) (*domain.DopeCard, error)
}

var _ dopeLogService = &dopeLogServiceMock{}

func (m *dopeLogServiceMock) Create(ctx context.Context, userID uuid.UUID, input dopelog.CreateInput) (*domain.DopeLog, error) {
	return m.CreateFunc(ctx, userID, input)
}

func (m *dopeLogServiceMock) Get(ctx context.Context, userID, logID uuid.UUID) (*domain.DopeLog, error) {
	return m.GetFunc(ctx, userID, logID)
}

func (m *dopeLogServiceMock) Update(ctx context.Context, userID, logID uuid.UUID, input dopelog.UpdateInput) (*domain.DopeLog, error) {
	return m.UpdateFunc(ctx, userID, logID, input)
}

func (m *dopeLogServiceMock) Delete(ctx context.Context, userID, logID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, logID)
}

func (m *dopeLogServiceMock) List(ctx context.Context, userID uuid.UUID, input dopelog.ListInput) (*dopelog.ListResult, error) {
	return m.ListFunc(ctx, userID, input)
}

func (m *dopeLogServiceMock) Card(ctx context.Context, userID, rifleID, ammoID uuid.UUID) (*domain.DopeCard, error) {
	return m.CardFunc(ctx, userID, rifleID, ammoID)
}

type environmentServiceMock struct {
	CreateFunc   func(ctx context.Context, userID uuid.UUID, input environment.CreateInput) (*domain.EnvironmentSnapshot, error)
	GetFunc      func(ctx context.Context, userID, envID uuid.UUID) (*domain.EnvironmentSnapshot, error)
	CurrentFunc  func(ctx context.Context, userID uuid.UUID) (*domain.EnvironmentSnapshot, error)
	UpdateFunc   func(ctx context.Context, userID, envID uuid.UUID, input environment.UpdateInput) (*domain.EnvironmentSnapshot, error)
	DeleteFunc   func(ctx context.Context, userID, envID uuid.UUID) error
	ListFunc     func(ctx context.Context, userID uuid.UUID, input environment.ListInput) (*environment.ListResult, error)
	AveragesFunc func(ctx context.Context, userID uuid.UUID, input environment.AveragesInput) (domain.EnvironmentAverages, error)
}

var _ environmentService = &environmentServiceMock{}

func (m *environmentServiceMock) Create(ctx context.Context, userID uuid.UUID, input environment.CreateInput) (*domain.EnvironmentSnapshot, error) {
	return m.CreateFunc(ctx, userID, input)
}

func (m *environmentServiceMock) Get(ctx context.Context, userID, envID uuid.UUID) (*domain.EnvironmentSnapshot, error) {
	return m.GetFunc(ctx, userID, envID)
}

func (m *environmentServiceMock) Current(ctx context.Context, userID uuid.UUID) (*domain.EnvironmentSnapshot, error) {
	return m.CurrentFunc(ctx, userID)
}

func (m *environmentServiceMock) Update(ctx context.Context, userID, envID uuid.UUID, input environment.UpdateInput) (*domain.EnvironmentSnapshot, error) {
	return m.UpdateFunc(ctx, userID, envID, input)
}

func (m *environmentServiceMock) Delete(ctx context.Context, userID, envID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, envID)
}

func (m *environmentServiceMock) List(ctx context.Context, userID uuid.UUID, input environment.ListInput) (*environment.ListResult, error) {
	return m.ListFunc(ctx, userID, input)
}

func (m *environmentServiceMock) Averages(ctx context.Context, userID uuid.UUID, input environment.AveragesInput) (domain.EnvironmentAverages, error) {
	return m.AveragesFunc(ctx, userID, input)
}

type ammoServiceMock struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, input ammo.CreateInput) (*domain.AmmoProfile, error)
	GetFunc    func(ctx context.Context, userID, ammoID uuid.UUID) (*domain.AmmoProfile, error)
	UpdateFunc func(ctx context.Context, userID, ammoID uuid.UUID, input ammo.UpdateInput) (*domain.AmmoProfile, error)
	DeleteFunc func(ctx context.Context, userID, ammoID uuid.UUID) error
	ListFunc   func(ctx context.Context, userID uuid.UUID, input ammo.ListInput) (*ammo.ListResult, error)
	StatsFunc  func(ctx context.Context, userID, ammoID uuid.UUID) (domain.AmmoStats, error)
}

var _ ammoService = &ammoServiceMock{}

func (m *ammoServiceMock) Create(ctx context.Context, userID uuid.UUID, input ammo.CreateInput) (*domain.AmmoProfile, error) {
	return m.CreateFunc(ctx, userID, input)
}

func (m *ammoServiceMock) Get(ctx context.Context, userID, ammoID uuid.UUID) (*domain.AmmoProfile, error) {
	return m.GetFunc(ctx, userID, ammoID)
}

func (m *ammoServiceMock) Update(ctx context.Context, userID, ammoID uuid.UUID, input ammo.UpdateInput) (*domain.AmmoProfile, error) {
	return m.UpdateFunc(ctx, userID, ammoID, input)
}

func (m *ammoServiceMock) Delete(ctx context.Context, userID, ammoID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, ammoID)
}

func (m *ammoServiceMock) List(ctx context.Context, userID uuid.UUID, input ammo.ListInput) (*ammo.ListResult, error) {
	return m.ListFunc(ctx, userID, input)
}

func (m *ammoServiceMock) Stats(ctx context.Context, userID, ammoID uuid.UUID) (domain.AmmoStats, error) {
	return m.StatsFunc(ctx, userID, ammoID)
}
