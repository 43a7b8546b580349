package accounts

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minPasswordLen = 6
	tokenTTL       = time.Hour
)

var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrWeakPassword    = errors.New("password too short")
	ErrTokenExpired    = errors.New("token expired")
	ErrInvalidToken    = errors.New("invalid token")
)

type Service struct {
	db     *gorm.DB
	secret []byte
}

func NewService(db *gorm.DB, secret string) *Service {
	return &Service{db: db, secret: []byte(secret)}
}

type tokenClaims struct {
	AccountID uint   `json:"id"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

func (s *Service) Register(name, username, password string) error {
	if len(password) < minPasswordLen {
		return ErrWeakPassword
	}
	var existing Account
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	acct := Account{Name: name, Username: username, Password: string(hash)}
	if err := s.db.Create(&acct).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	log.Info().Str("module", "accounts").Str("username", username).Msg("user registered")
	return nil
}

// Login checks credentials and mints an HS256 token good for one hour.
func (s *Service) Login(username, password string) (string, *Account, error) {
	var acct Account
	if err := s.db.Where("username = ?", username).First(&acct).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidPassword
	}

	now := time.Now()
	claims := tokenClaims{
		AccountID: acct.ID,
		Username:  acct.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, &acct, nil
}

func (s *Service) AddActivity(token, meetingCode string) error {
	acct, err := s.verify(token)
	if err != nil {
		return err
	}
	entry := Activity{AccountID: acct.ID, MeetingCode: meetingCode, Date: time.Now()}
	if err := s.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

func (s *Service) Activities(token string) ([]Activity, error) {
	acct, err := s.verify(token)
	if err != nil {
		return nil, err
	}
	var out []Activity
	if err := s.db.Where("account_id = ?", acct.ID).Order("date asc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return out, nil
}

func (s *Service) verify(token string) (*Account, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	var acct Account
	if err := s.db.First(&acct, claims.AccountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return &acct, nil
}
