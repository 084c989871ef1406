package service

import (
	"context"

	"github.com/devfolio/devfolio/internal/model"
)

type mockUserRepo struct {
	findAllFn  func(ctx context.Context) ([]*model.User, error)
	findByIDFn func(ctx context.Context, id string) (*model.User, error)
	existsFn   func(ctx context.Context, id string) (bool, error)
	createFn   func(ctx context.Context, user *model.User) error
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) Exists(ctx context.Context, id string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

type mockProjectRepo struct {
	findByOwnerFn  func(ctx context.Context, ownerID string) ([]*model.Project, error)
	findByIDFn     func(ctx context.Context, id string) (*model.Project, error)
	createFn       func(ctx context.Context, project *model.Project) error
	updateFieldsFn func(ctx context.Context, id string, fields map[string]any) error
	deleteFn       func(ctx context.Context, id string) error
	saveOrderFn    func(ctx context.Context, ids []string) error
}

func (m *mockProjectRepo) FindByOwner(ctx context.Context, ownerID string) ([]*model.Project, error) {
	if m.findByOwnerFn != nil {
		return m.findByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockProjectRepo) FindByID(ctx context.Context, id string) (*model.Project, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepo) Create(ctx context.Context, project *model.Project) error {
	if m.createFn != nil {
		return m.createFn(ctx, project)
	}
	return nil
}

func (m *mockProjectRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	if m.updateFieldsFn != nil {
		return m.updateFieldsFn(ctx, id, fields)
	}
	return nil
}

func (m *mockProjectRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockProjectRepo) SaveOrder(ctx context.Context, ids []string) error {
	if m.saveOrderFn != nil {
		return m.saveOrderFn(ctx, ids)
	}
	return nil
}

type mockSiteConfigRepo struct {
	findByUserIDFn func(ctx context.Context, userID string) (*model.SiteConfig, error)
	saveFn         func(ctx context.Context, config *model.SiteConfig) error
}

func (m *mockSiteConfigRepo) FindByUserID(ctx context.Context, userID string) (*model.SiteConfig, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSiteConfigRepo) Save(ctx context.Context, config *model.SiteConfig) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, config)
	}
	return nil
}
