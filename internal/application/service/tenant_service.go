package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/facturalink/cotizador-api/internal/domain/entity"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
	"github.com/facturalink/cotizador-api/internal/domain/repository"
	"github.com/facturalink/cotizador-api/pkg/apperror"
	"github.com/facturalink/cotizador-api/pkg/pagination"
)

// TenantService handles tenant-related operations
type TenantService struct {
	tenantRepo  repository.TenantRepository
	packageRepo repository.PackageRepository
	planRepo    repository.FinancingPlanRepository
}

// NewTenantService creates a new tenant service
func NewTenantService(
	tenantRepo repository.TenantRepository,
	packageRepo repository.PackageRepository,
	planRepo repository.FinancingPlanRepository,
) *TenantService {
	return &TenantService{
		tenantRepo:  tenantRepo,
		packageRepo: packageRepo,
		planRepo:    planRepo,
	}
}

// CreateTenantInput represents input for creating a tenant
type CreateTenantInput struct {
	Name     string
	Slug     string
	OwnerID  uuid.UUID
	Settings *entity.TenantSettings
}

// CreateTenant creates a new tenant, adds the owner as a member and
// seeds the default quoting catalog
func (s *TenantService) CreateTenant(ctx context.Context, input *CreateTenantInput) (*entity.Tenant, error) {
	// Check if slug already exists
	existing, err := s.tenantRepo.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Tenant slug already exists")
	}

	settings := entity.DefaultTenantSettings()
	if input.Settings != nil {
		settings = *input.Settings
	}

	tenant := &entity.Tenant{
		Name:     input.Name,
		Slug:     input.Slug,
		OwnerID:  input.OwnerID,
		Settings: settings,
	}

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	// Add owner as member
	membership := &entity.TenantMembership{
		TenantID: tenant.ID,
		UserID:   input.OwnerID,
		Role:     "owner",
	}
	_ = s.tenantRepo.AddMember(ctx, membership)

	if err := s.seedCatalog(ctx, tenant.ID); err != nil {
		return nil, err
	}

	return tenant, nil
}

// seedCatalog loads the standard package tiers and financing plans into
// a fresh tenant so the quoting wizard works out of the box. Amounts
// are annual list prices in USD.
func (s *TenantService) seedCatalog(ctx context.Context, tenantID uuid.UUID) error {
	packages := []entity.Package{
		{TenantID: tenantID, Name: "Emprendedor", Slug: "emprendedor", AnnualPrice: 348, MonthlyPrice: 29, ImplementationCost: 150, DTECapacity: 1200, DisplayOrder: 1, IsActive: true},
		{TenantID: tenantID, Name: "Pyme", Slug: "pyme", AnnualPrice: 708, MonthlyPrice: 59, ImplementationCost: 250, DTECapacity: 6000, DisplayOrder: 2, IsActive: true},
		{TenantID: tenantID, Name: "Empresarial", Slug: "empresarial", AnnualPrice: 1428, MonthlyPrice: 119, ImplementationCost: 400, DTECapacity: 30000, DisplayOrder: 3, IsActive: true},
		{TenantID: tenantID, Name: "Corporativo", Slug: "corporativo", AnnualPrice: 2988, MonthlyPrice: 249, ImplementationCost: 800, DTECapacity: 120000, DisplayOrder: 4, IsActive: true},
	}
	for i := range packages {
		if err := s.packageRepo.Create(ctx, &packages[i]); err != nil {
			return err
		}
	}

	plans := []entity.FinancingPlan{
		{TenantID: tenantID, Title: "Pago anual", TermMonths: 12, InstallmentCount: 1, AdjustmentType: enum.AdjustmentTypeDiscount, AdjustmentRatePct: 10, IsPopular: true, DisplayOrder: 1, ShowBreakdown: false, IsActive: true},
		{TenantID: tenantID, Title: "Pago semestral", TermMonths: 12, InstallmentCount: 2, AdjustmentType: enum.AdjustmentTypeNone, AdjustmentRatePct: 0, DisplayOrder: 2, ShowBreakdown: true, IsActive: true},
		{TenantID: tenantID, Title: "Pago mensual", TermMonths: 12, InstallmentCount: 12, AdjustmentType: enum.AdjustmentTypeSurcharge, AdjustmentRatePct: 15, DisplayOrder: 3, ShowBreakdown: true, IsActive: true},
	}
	for i := range plans {
		if err := s.planRepo.Create(ctx, &plans[i]); err != nil {
			return err
		}
	}

	return nil
}

// GetTenant retrieves a tenant by ID
func (s *TenantService) GetTenant(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.ErrNotFound
	}
	return tenant, nil
}

// GetUserTenants retrieves all tenants a user belongs to
func (s *TenantService) GetUserTenants(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Tenant], error) {
	tenants, total, err := s.tenantRepo.GetUserTenants(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(tenants, pag), nil
}

// UpdateTenantInput represents input for updating a tenant
type UpdateTenantInput struct {
	ID       uuid.UUID
	Name     string
	Settings *entity.TenantSettings
}

// UpdateTenant updates a tenant
func (s *TenantService) UpdateTenant(ctx context.Context, input *UpdateTenantInput) (*entity.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.ErrNotFound
	}

	if input.Name != "" {
		tenant.Name = input.Name
	}
	if input.Settings != nil {
		tenant.Settings = *input.Settings
	}

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}

	return tenant, nil
}

// InviteMemberInput represents input for inviting a user to a tenant
type InviteMemberInput struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
	Role     string
}

// InviteMember adds a user to a tenant
func (s *TenantService) InviteMember(ctx context.Context, input *InviteMemberInput) error {
	// Check if user is already a member
	isMember, _ := s.tenantRepo.IsMember(ctx, input.TenantID, input.UserID)
	if isMember {
		return apperror.NewConflictError("User is already a member of this tenant")
	}

	membership := &entity.TenantMembership{
		TenantID: input.TenantID,
		UserID:   input.UserID,
		Role:     input.Role,
	}

	return s.tenantRepo.AddMember(ctx, membership)
}

// RemoveMember removes a user from a tenant
func (s *TenantService) RemoveMember(ctx context.Context, tenantID, userID uuid.UUID) error {
	return s.tenantRepo.RemoveMember(ctx, tenantID, userID)
}

// GetTenantMembers retrieves all members of a tenant
func (s *TenantService) GetTenantMembers(ctx context.Context, tenantID uuid.UUID) ([]entity.TenantMembership, error) {
	members, err := s.tenantRepo.GetMembers(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	// Populate user details for JSON response
	for i := range members {
		members[i].PopulateUserDetails()
	}

	return members, nil
}

// UpdateMemberRole updates a member's role in a tenant
func (s *TenantService) UpdateMemberRole(ctx context.Context, tenantID, userID uuid.UUID, role string) error {
	return s.tenantRepo.UpdateMemberRole(ctx, tenantID, userID, role)
}

// ListAllTenants retrieves all tenants (for super admin use)
func (s *TenantService) ListAllTenants(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Tenant], error) {
	tenants, total, err := s.tenantRepo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(tenants, pag), nil
}

// AssignUserToTenantInput represents input for assigning a user to a tenant
type AssignUserToTenantInput struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
	Role     string
}

// AssignUserToTenant assigns a user to a tenant (for super admin use)
func (s *TenantService) AssignUserToTenant(ctx context.Context, input *AssignUserToTenantInput) error {
	// Check if tenant exists
	tenant, err := s.tenantRepo.GetByID(ctx, input.TenantID)
	if err != nil {
		return err
	}
	if tenant == nil {
		return apperror.ErrNotFound
	}

	// Check if user is already a member
	isMember, _ := s.tenantRepo.IsMember(ctx, input.TenantID, input.UserID)
	if isMember {
		return apperror.NewConflictError("User is already a member of this tenant")
	}

	// Default role to member if not specified
	role := input.Role
	if role == "" {
		role = "member"
	}

	membership := &entity.TenantMembership{
		TenantID: input.TenantID,
		UserID:   input.UserID,
		Role:     role,
	}

	return s.tenantRepo.AddMember(ctx, membership)
}
