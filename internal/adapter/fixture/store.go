// Package fixture is the in-memory data source: the same repository
// contracts as the Postgres adapters, seeded with the demo dataset.
package fixture

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// Store holds every entity of the fixture data source.
type Store struct {
	mu       sync.RWMutex
	txMu     sync.Mutex
	users    map[uuid.UUID]domain.User
	profiles []domain.Profile
	leads    []domain.Lead
	statuses []domain.LeadStatusRecord
	history  []domain.SearchHistory
	now      func() time.Time
}

// NewStore creates a store seeded with a copy of ds.
func NewStore(ds Dataset) *Store {
	s := &Store{
		users: make(map[uuid.UUID]domain.User, len(ds.Users)),
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
	for _, u := range ds.Users {
		s.users[u.ID] = u
	}
	for _, p := range ds.Profiles {
		s.profiles = append(s.profiles, cloneProfile(p))
	}
	s.leads = slices.Clone(ds.Leads)
	s.statuses = slices.Clone(ds.Statuses)
	for _, h := range ds.History {
		h.Filters = cloneFilters(h.Filters)
		s.history = append(s.history, h)
	}
	return s
}

// Users returns the user repository view of the store.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Profiles returns the profile repository view of the store.
func (s *Store) Profiles() *ProfileRepo { return &ProfileRepo{s: s} }

// Leads returns the lead repository view of the store.
func (s *Store) Leads() *LeadRepo { return &LeadRepo{s: s} }

// LeadStatuses returns the lead status repository view of the store.
func (s *Store) LeadStatuses() *LeadStatusRepo { return &LeadStatusRepo{s: s} }

// History returns the search history repository view of the store.
func (s *Store) History() *HistoryRepo { return &HistoryRepo{s: s} }

// ---------------------------------------------------------------------------
// Transactions
// ---------------------------------------------------------------------------

type txKey struct{}

type snapshot struct {
	users    map[uuid.UUID]domain.User
	profiles []domain.Profile
	leads    []domain.Lead
	statuses []domain.LeadStatusRecord
	history  []domain.SearchHistory
}

// RunInTx runs fn and restores the store to its prior state when fn fails
// or panics. Transactions are serialized; a nested call joins the outer one.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()

	defer func() {
		if r := recover(); r != nil {
			s.restore(snap)
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// lockWrite orders a write made outside a transaction after any running
// transaction, so a rollback cannot discard it. Writes inside a
// transaction already hold txMu.
func (s *Store) lockWrite(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make(map[uuid.UUID]domain.User, len(s.users))
	for id, u := range s.users {
		users[id] = u
	}
	return snapshot{
		users:    users,
		profiles: slices.Clone(s.profiles),
		leads:    slices.Clone(s.leads),
		statuses: slices.Clone(s.statuses),
		history:  slices.Clone(s.history),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = snap.users
	s.profiles = snap.profiles
	s.leads = snap.leads
	s.statuses = snap.statuses
	s.history = snap.history
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

// UserRepo serves users from the store.
type UserRepo struct{ s *Store }

// GetByID returns a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &u, nil
}

// Ensure creates or refreshes the user of an authenticated account.
func (r *UserRepo) Ensure(ctx context.Context, au domain.AuthUser) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.s.lockWrite(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, u := range r.s.users {
		if id != au.ID && strings.EqualFold(u.Email, au.Email) {
			return nil, fmt.Errorf("user %s: %w", au.ID, domain.ErrAlreadyExists)
		}
	}

	now := r.s.now()
	role := au.Role
	if role == "" {
		role = "user"
	}

	u, ok := r.s.users[au.ID]
	if !ok {
		u = domain.User{
			ID:                au.ID,
			NotificationEmail: true,
			NotificationWeb:   true,
			CreatedAt:         now,
		}
	}
	u.Email = au.Email
	u.Role = role
	u.UpdatedAt = now
	u.LastSignInAt = &now
	r.s.users[au.ID] = u

	return &u, nil
}

// UpdatePreferences changes the display name and notification settings.
func (r *UserRepo) UpdatePreferences(ctx context.Context, in *domain.User) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.s.lockWrite(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[in.ID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", in.ID, domain.ErrNotFound)
	}
	u.DisplayName = in.DisplayName
	u.NotificationEmail = in.NotificationEmail
	u.NotificationWeb = in.NotificationWeb
	u.UpdatedAt = r.s.now()
	r.s.users[in.ID] = u

	return &u, nil
}

// ---------------------------------------------------------------------------
// Profiles
// ---------------------------------------------------------------------------

// ProfileRepo serves prospection profiles from the store.
type ProfileRepo struct{ s *Store }

// ListByUser returns the user's profiles, default first, then newest first.
func (r *ProfileRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Profile, 0)
	for _, p := range r.s.profiles {
		if p.UserID == userID {
			out = append(out, cloneProfile(p))
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Profile) int {
		if a.IsDefault != b.IsDefault {
			if a.IsDefault {
				return -1
			}
			return 1
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

// GetByID returns a profile owned by the user.
func (r *ProfileRepo) GetByID(ctx context.Context, userID, profileID uuid.UUID) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := r.s.profileIndex(userID, profileID)
	if i < 0 {
		return nil, fmt.Errorf("profile %s: %w", profileID, domain.ErrNotFound)
	}
	p := cloneProfile(r.s.profiles[i])
	return &p, nil
}

// CountByUser returns the number of profiles owned by the user.
func (r *ProfileRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, p := range r.s.profiles {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

// Create inserts a profile. A second default returns domain.ErrAlreadyExists.
func (r *ProfileRepo) Create(ctx context.Context, in *domain.Profile) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.s.lockWrite(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p := cloneProfile(*in)
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if _, ok := r.s.users[p.UserID]; !ok {
		return nil, fmt.Errorf("profile %s: %w", p.ID, domain.ErrNotFound)
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("profile %s: %w", p.ID, domain.ErrValidation)
	}
	if p.IsDefault && r.s.hasOtherDefault(p.UserID, p.ID) {
		return nil, fmt.Errorf("profile %s: %w", p.ID, domain.ErrAlreadyExists)
	}

	now := r.s.now()
	p.Filters = p.Filters.Normalize()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.LastUsedAt = nil
	r.s.profiles = append(r.s.profiles, p)

	out := cloneProfile(p)
	return &out, nil
}

// Update replaces the editable fields of a profile owned by in.UserID.
func (r *ProfileRepo) Update(ctx context.Context, in *domain.Profile) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.s.lockWrite(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.s.profileIndex(in.UserID, in.ID)
	if i < 0 {
		return nil, fmt.Errorf("profile %s: %w", in.ID, domain.ErrNotFound)
	}
	if in.IsDefault && r.s.hasOtherDefault(in.UserID, in.ID) {
		return nil, fmt.Errorf("profile %s: %w", in.ID, domain.ErrAlreadyExists)
	}

	p := r.s.profiles[i]
	p.Name = in.Name
	p.Description = in.Description
	p.Filters = cloneFilters(in.Filters).Normalize()
	p.IsDefault = in.IsDefault
	p.UpdatedAt = r.s.now()
	r.s.profiles[i] = p

	out := cloneProfile(p)
	return &out, nil
}

// Delete removes a profile owned by the user. History entries that
// referenced it keep their data and lose the link.
func (r *ProfileRepo) Delete(ctx context.Context, userID, profileID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.s.lockWrite(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.s.profileIndex(userID, profileID)
	if i < 0 {
		return fmt.Errorf("profile %s: %w", profileID, domain.ErrNotFound)
	}
	r.s.profiles = slices.Delete(r.s.profiles, i, i+1)

	for j := range r.s.history {
		if h := &r.s.history[j]; h.ProfileID != nil && *h.ProfileID == profileID {
			h.ProfileID = nil
		}
	}
	return nil
}

// ClearDefault demotes every default profile of the user except keepID.
func (r *ProfileRepo) ClearDefault(ctx context.Context, userID, keepID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.s.lockWrite(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	for i := range r.s.profiles {
		p := &r.s.profiles[i]
		if p.UserID == userID && p.ID != keepID && p.IsDefault {
			p.IsDefault = false
			p.UpdatedAt = now
		}
	}
	return nil
}

// SetDefault marks a profile as the user's default.
func (r *ProfileRepo) SetDefault(ctx context.Context, userID, profileID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.s.lockWrite(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.s.profileIndex(userID, profileID)
	if i < 0 {
		return fmt.Errorf("profile %s: %w", profileID, domain.ErrNotFound)
	}
	if r.s.hasOtherDefault(userID, profileID) {
		return fmt.Errorf("profile %s: %w", profileID, domain.ErrAlreadyExists)
	}
	r.s.profiles[i].IsDefault = true
	r.s.profiles[i].UpdatedAt = r.s.now()
	return nil
}

// PromoteMostRecent makes the user's most recently used profile other than
// excludeID the default, falling back to the newest one. It reports false
// when the user already has a default or has no other profile.
func (r *ProfileRepo) PromoteMostRecent(ctx context.Context, userID, excludeID uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	defer r.s.lockWrite(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.hasOtherDefault(userID, uuid.Nil) {
		return false, nil
	}

	best := -1
	for i, p := range r.s.profiles {
		if p.UserID != userID || p.ID == excludeID {
			continue
		}
		if best < 0 || promotionRank(p, r.s.profiles[best]) > 0 {
			best = i
		}
	}
	if best < 0 {
		return false, nil
	}

	r.s.profiles[best].IsDefault = true
	r.s.profiles[best].UpdatedAt = r.s.now()
	return true, nil
}

// promotionRank orders profiles by last use, then creation, newest first.
func promotionRank(a, b domain.Profile) int {
	if c := lastActivity(a).Compare(lastActivity(b)); c != 0 {
		return c
	}
	return a.CreatedAt.Compare(b.CreatedAt)
}

func lastActivity(p domain.Profile) time.Time {
	if p.LastUsedAt != nil {
		return *p.LastUsedAt
	}
	return p.CreatedAt
}

// TouchLastUsed records that the profile was just used for a search.
func (r *ProfileRepo) TouchLastUsed(ctx context.Context, userID, profileID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.s.lockWrite(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if i := r.s.profileIndex(userID, profileID); i >= 0 {
		now := r.s.now()
		r.s.profiles[i].LastUsedAt = &now
	}
	return nil
}

// profileIndex must be called with mu held.
func (s *Store) profileIndex(userID, profileID uuid.UUID) int {
	return slices.IndexFunc(s.profiles, func(p domain.Profile) bool {
		return p.ID == profileID && p.UserID == userID
	})
}

// hasOtherDefault must be called with mu held.
func (s *Store) hasOtherDefault(userID, profileID uuid.UUID) bool {
	return slices.ContainsFunc(s.profiles, func(p domain.Profile) bool {
		return p.UserID == userID && p.ID != profileID && p.IsDefault
	})
}

// ---------------------------------------------------------------------------
// Leads
// ---------------------------------------------------------------------------

// LeadRepo serves leads from the store.
type LeadRepo struct{ s *Store }

// Search returns every lead matching the criteria, newest first.
func (r *LeadRepo) Search(ctx context.Context, criteria domain.LeadCriteria) ([]domain.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Lead, 0)
	for _, l := range r.s.leads {
		if criteria.Matches(&l) {
			out = append(out, l)
		}
	}
	sortLeads(out)
	return out, nil
}

// ListByUser returns the leads created by or assigned to the user, newest first.
func (r *LeadRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Lead, 0)
	for _, l := range r.s.leads {
		if ownsLead(l, userID) {
			out = append(out, l)
		}
	}
	sortLeads(out)
	return out, nil
}

// GetByID returns a lead by id.
func (r *LeadRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := r.s.leadIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
	}
	l := r.s.leads[i]
	return &l, nil
}

// Create inserts a lead. A zero ID is replaced with a new one.
func (r *LeadRepo) Create(ctx context.Context, in *domain.Lead) (*domain.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.s.lockWrite(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l := *in
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if r.s.leadIndex(l.ID) >= 0 {
		return nil, fmt.Errorf("lead %s: %w", l.ID, domain.ErrAlreadyExists)
	}
	l.Status = l.Status.OrNew()
	if !l.Status.IsValid() {
		return nil, fmt.Errorf("lead %s: %w", l.ID, domain.ErrValidation)
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = r.s.now()
	}
	l.UpdatedAt = l.CreatedAt
	r.s.leads = append(r.s.leads, l)

	return &l, nil
}

// UpdateStatus sets the pipeline status of a lead created by or assigned
// to the user.
func (r *LeadRepo) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status domain.LeadStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.s.lockWrite(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.s.leadIndex(id)
	if i < 0 || !ownsLead(r.s.leads[i], userID) {
		return fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
	}
	if !status.IsValid() {
		return fmt.Errorf("lead %s: %w", id, domain.ErrValidation)
	}
	r.s.leads[i].Status = status
	r.s.leads[i].UpdatedAt = r.s.now()
	return nil
}

func ownsLead(l domain.Lead, userID uuid.UUID) bool {
	return (l.CreatedBy != nil && *l.CreatedBy == userID) || (l.AssignedTo != nil && *l.AssignedTo == userID)
}

// leadIndex must be called with mu held.
func (s *Store) leadIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.leads, func(l domain.Lead) bool { return l.ID == id })
}

func sortLeads(leads []domain.Lead) {
	slices.SortStableFunc(leads, func(a, b domain.Lead) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

// ---------------------------------------------------------------------------
// Lead statuses
// ---------------------------------------------------------------------------

// LeadStatusRepo serves per-user lead annotations from the store.
type LeadStatusRepo struct{ s *Store }

// Upsert creates or replaces the user's annotation of a lead.
func (r *LeadStatusRepo) Upsert(ctx context.Context, in *domain.LeadStatusRecord) (*domain.LeadStatusRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.s.lockWrite(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	li := r.s.leadIndex(in.LeadID)
	if li < 0 {
		return nil, fmt.Errorf("lead_status %s: %w", in.LeadID, domain.ErrNotFound)
	}
	if _, ok := r.s.users[in.UserID]; !ok {
		return nil, fmt.Errorf("lead_status %s: %w", in.LeadID, domain.ErrNotFound)
	}

	rec := *in
	rec.Status = rec.Status.OrNew()
	if !rec.Status.IsValid() || (rec.LastContactMethod != nil && !rec.LastContactMethod.IsValid()) {
		return nil, fmt.Errorf("lead_status %s: %w", in.LeadID, domain.ErrValidation)
	}

	now := r.s.now()
	i := slices.IndexFunc(r.s.statuses, func(s domain.LeadStatusRecord) bool {
		return s.LeadID == in.LeadID && s.UserID == in.UserID
	})
	if i >= 0 {
		rec.ID = r.s.statuses[i].ID
		rec.CreatedAt = r.s.statuses[i].CreatedAt
		rec.UpdatedAt = now
		r.s.statuses[i] = rec
	} else {
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		rec.CreatedAt = now
		rec.UpdatedAt = now
		r.s.statuses = append(r.s.statuses, rec)
	}

	joinLead(&rec, r.s.leads[li])
	return &rec, nil
}

// ListByUser returns the user's annotations, most recently updated first.
func (r *LeadStatusRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LeadStatusRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.LeadStatusRecord, 0)
	for _, rec := range r.s.statuses {
		if rec.UserID != userID {
			continue
		}
		if li := r.s.leadIndex(rec.LeadID); li >= 0 {
			joinLead(&rec, r.s.leads[li])
			out = append(out, rec)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.LeadStatusRecord) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out, nil
}

func joinLead(rec *domain.LeadStatusRecord, l domain.Lead) {
	rec.CompanyName = l.CompanyName
	rec.ContactName = l.ContactName
	rec.Email = l.Email
}

// ---------------------------------------------------------------------------
// Search history
// ---------------------------------------------------------------------------

// HistoryRepo serves search history from the store.
type HistoryRepo struct{ s *Store }

// Create appends a history entry.
func (r *HistoryRepo) Create(ctx context.Context, in *domain.SearchHistory) (*domain.SearchHistory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.s.lockWrite(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	h := *in
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if _, ok := r.s.users[h.UserID]; !ok {
		return nil, fmt.Errorf("search_history %s: %w", h.ID, domain.ErrNotFound)
	}
	if h.ProfileID != nil && r.s.profileIndex(h.UserID, *h.ProfileID) < 0 {
		return nil, fmt.Errorf("search_history %s: %w", h.ID, domain.ErrNotFound)
	}
	h.Filters = cloneFilters(h.Filters).Normalize()
	h.ProfileName = nil
	h.CreatedAt = r.s.now()
	r.s.history = append(r.s.history, h)

	out := h
	r.s.joinProfileName(&out)
	return &out, nil
}

// ListByUser returns the user's history newest first. A positive limit
// caps the number of entries.
func (r *HistoryRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SearchHistory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.SearchHistory, 0)
	for _, h := range r.s.history {
		if h.UserID == userID {
			r.s.joinProfileName(&h)
			out = append(out, h)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.SearchHistory) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// UpdateFlags changes the name and saved/favorite flags of an entry.
func (r *HistoryRepo) UpdateFlags(ctx context.Context, userID, id uuid.UUID, upd domain.SearchHistoryUpdate) (*domain.SearchHistory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.s.lockWrite(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := slices.IndexFunc(r.s.history, func(h domain.SearchHistory) bool {
		return h.ID == id && h.UserID == userID
	})
	if i < 0 {
		return nil, fmt.Errorf("search_history %s: %w", id, domain.ErrNotFound)
	}

	h := &r.s.history[i]
	if upd.SearchName != nil {
		if name := *upd.SearchName; name == "" {
			h.SearchName = nil
		} else {
			h.SearchName = &name
		}
	}
	if upd.IsSaved != nil {
		h.IsSaved = *upd.IsSaved
	}
	if upd.IsFavorite != nil {
		h.IsFavorite = *upd.IsFavorite
	}

	out := *h
	r.s.joinProfileName(&out)
	return &out, nil
}

// joinProfileName must be called with mu held.
func (s *Store) joinProfileName(h *domain.SearchHistory) {
	h.ProfileName = nil
	if h.ProfileID == nil {
		return
	}
	if i := s.profileIndex(h.UserID, *h.ProfileID); i >= 0 {
		name := s.profiles[i].Name
		h.ProfileName = &name
	}
}

// ---------------------------------------------------------------------------
// Copy helpers
// ---------------------------------------------------------------------------

func cloneProfile(p domain.Profile) domain.Profile {
	p.Filters = cloneFilters(p.Filters)
	return p
}

func cloneFilters(f domain.Filters) domain.Filters {
	f.Industries = slices.Clone(f.Industries)
	f.CompanySizes = slices.Clone(f.CompanySizes)
	f.Locations = slices.Clone(f.Locations)
	f.NAFCodes = slices.Clone(f.NAFCodes)
	f.Keywords = slices.Clone(f.Keywords)
	return f
}
