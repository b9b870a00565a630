package internal

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/DrGermanius/Zencoo/internal/model"
)

const tokenTTL = 72 * time.Hour

type IService interface {
	Register(context.Context, model.RegisterInput) (string, error)
	Login(context.Context, string, string) (string, error)
	IsEmailRegistered(context.Context, string) (bool, error)
	IsUsernameUnique(context.Context, string) (bool, error)
	GetJWTToken(string) (string, error)

	GetPlacedOrders() []model.PlacedOrderOutput
	GetReceivedOrders() []model.ReceivedOrderOutput
	ApplyReceivedAction(string, model.Action) (model.ReceivedOrder, error)
	CancelPlacedOrder(string, Confirmer) error
}

type Service struct {
	repo     IRepository
	placed   *PlacedView
	received *ReceivedView
	secret   []byte
	logger   *zap.SugaredLogger
}

func NewService(repo IRepository, placed *PlacedView, received *ReceivedView, secret string, logger *zap.SugaredLogger) *Service {
	return &Service{
		repo:     repo,
		placed:   placed,
		received: received,
		secret:   []byte(secret),
		logger:   logger,
	}
}

func (s Service) Register(ctx context.Context, i model.RegisterInput) (string, error) {
	i.Email = normalizeEmail(i.Email)
	if !i.Valid() {
		return "", ErrInvalidRegistration
	}

	exist, err := s.repo.IsEmailRegistered(ctx, i.Email)
	if err != nil {
		return "", err
	}
	if exist {
		return "", ErrEmailIsAlreadyRegistered
	}

	taken, err := s.repo.IsUsernameTaken(ctx, i.Username)
	if err != nil {
		return "", err
	}
	if taken {
		return "", ErrUsernameIsAlreadyTaken
	}

	h, err := GetHash(i.Password)
	if err != nil {
		return "", err
	}

	id, err := s.repo.Register(ctx, model.User{
		Email:      i.Email,
		Username:   i.Username,
		Password:   h,
		FullName:   i.FullName,
		DoorNumber: i.DoorNumber,
		Community:  i.Community,
	})
	if err != nil {
		return "", err
	}

	s.logger.Infof("User %d registered in community %s", id, i.Community)
	return s.GetJWTToken(strconv.Itoa(id))
}

func (s Service) Login(ctx context.Context, email, password string) (string, error) {
	id, h, err := s.repo.GetCredentials(ctx, normalizeEmail(email))
	if err != nil {
		return "", err
	}

	err = bcrypt.CompareHashAndPassword([]byte(h), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	return s.GetJWTToken(strconv.Itoa(id))
}

func (s Service) IsEmailRegistered(ctx context.Context, email string) (bool, error) {
	return s.repo.IsEmailRegistered(ctx, normalizeEmail(email))
}

func (s Service) IsUsernameUnique(ctx context.Context, username string) (bool, error) {
	taken, err := s.repo.IsUsernameTaken(ctx, username)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

func (s Service) GetJWTToken(uid string) (string, error) {
	claims := jwt.MapClaims{
		"id":  uid,
		"exp": time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return t, nil
}

func (s Service) GetPlacedOrders() []model.PlacedOrderOutput {
	return s.placed.Output()
}

func (s Service) GetReceivedOrders() []model.ReceivedOrderOutput {
	return s.received.Output()
}

func (s Service) ApplyReceivedAction(orderID string, action model.Action) (model.ReceivedOrder, error) {
	o, err := s.received.Apply(orderID, action)
	if err != nil {
		s.logger.Warnf("Action %s on order %s failed: %s", action, orderID, err.Error())
		return model.ReceivedOrder{}, err
	}
	return o, nil
}

func (s Service) CancelPlacedOrder(orderID string, c Confirmer) error {
	err := s.placed.Cancel(orderID, c)
	if err != nil {
		s.logger.Warnf("Cancel of placed order %s failed: %s", orderID, err.Error())
	}
	return err
}

func GetHash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
