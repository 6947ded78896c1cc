package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"luma-companion-be/internal/config"
	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/pkg/apperror"
	"luma-companion-be/internal/repository/specification"
	"luma-companion-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type IOAuthService interface {
	GetLoginURL(provider string) (string, error)
	HandleCallback(ctx context.Context, provider string, code string) (*dto.AuthResponse, error)
}

type oauthService struct {
	uowFactory unitofwork.RepositoryFactory
	googleConf *oauth2.Config
}

func NewOAuthService(uowFactory unitofwork.RepositoryFactory, cfg config.OAuthConfig) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     cfg.GoogleClientId,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &oauthService{
		uowFactory: uowFactory,
		googleConf: conf,
	}
}

func (s *oauthService) GetLoginURL(provider string) (string, error) {
	if provider != "google" {
		return "", apperror.New(apperror.KindValidation, "unsupported provider")
	}

	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)

	return s.googleConf.AuthCodeURL(state), nil
}

func (s *oauthService) HandleCallback(ctx context.Context, provider string, code string) (*dto.AuthResponse, error) {
	if provider != "google" {
		return nil, apperror.New(apperror.KindValidation, "unsupported provider")
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindUpstream, "code exchange failed", err)
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindUpstream, "failed getting user info", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var googleUser struct {
		Id      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.Unmarshal(content, &googleUser); err != nil {
		return nil, fmt.Errorf("failed parsing user info: %w", err)
	}
	if googleUser.Email == "" {
		return nil, apperror.New(apperror.KindUpstream, "google returned no email")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var user *entity.User

	providerRecord, err := uow.UserProviderRepository().FindOne(ctx, specification.ByProvider{
		ProviderName:   "google",
		ProviderUserId: googleUser.Id,
	})
	if err != nil {
		return nil, err
	}

	if providerRecord != nil {
		user, err = uow.UserRepository().FindOne(ctx, specification.ByID{ID: providerRecord.UserId})
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperror.New(apperror.KindInternal, "provider record without user")
		}
	} else {
		user, err = uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: googleUser.Email})
		if err != nil {
			return nil, err
		}

		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}
		defer uow.Rollback()

		if user == nil {
			avatar := googleUser.Picture
			user = &entity.User{
				Id:        uuid.New(),
				Email:     googleUser.Email,
				FullName:  googleUser.Name,
				AvatarURL: &avatar,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := uow.UserRepository().Create(ctx, user); err != nil {
				return nil, err
			}
		}

		newProvider := &entity.UserProvider{
			Id:             uuid.New(),
			UserId:         user.Id,
			ProviderName:   "google",
			ProviderUserId: googleUser.Id,
			AvatarURL:      googleUser.Picture,
			CreatedAt:      time.Now(),
		}
		if err := uow.UserProviderRepository().Create(ctx, newProvider); err != nil {
			return nil, err
		}

		if err := uow.Commit(); err != nil {
			return nil, err
		}
	}

	jwtToken, err := generateToken(user.Id)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: jwtToken, User: userResponse(user)}, nil
}
