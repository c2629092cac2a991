package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/blacksite-games/incursion-engine/internal/models"
)

// Common errors
var (
	ErrSectorNotFound   = errors.New("sector not found")
	ErrPasswordExists   = errors.New("password already exists")
	ErrPasswordNotFound = errors.New("password not found")
)

// tickInterval is the cadence of the attack loop. The attack-increment formula
// (90 points over minutes*30 updates) assumes this value; do not make it
// configurable without changing the formula.
const tickInterval = 2 * time.Second

const (
	minSessionMinutes = 10
	maxSessionMinutes = 120
)

// Observer receives a fresh snapshot after every state change and every tick.
// A panicking observer is isolated; it never stops the loop or other observers.
type Observer func(models.Snapshot)

// Engine owns all sector state, the password registry, session timing and the
// periodic attack loop. All methods are safe for concurrent use.
type Engine struct {
	mu        sync.Mutex
	sectors   map[string]*models.Sector
	passwords map[string]*models.Password

	globalThreat float64
	active       bool

	sessionMinutes int
	startTime      time.Time     // zero = session not started
	clockOffset    time.Duration // accumulated bonus time; reduces apparent elapsed

	rng *rand.Rand

	cancel context.CancelFunc
	done   chan struct{}

	obsMu     sync.Mutex
	observers map[int]Observer
	nextObsID int
}

// New creates an engine with freshly randomized sectors and default passwords
func New(sessionMinutes int) *Engine {
	e := &Engine{
		passwords:      make(map[string]*models.Password),
		sessionMinutes: clampSessionMinutes(sessionMinutes),
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		observers:      make(map[int]Observer),
	}
	e.sectors = e.initSectors()
	for _, pw := range defaultPasswords() {
		p := pw
		e.passwords[p.Code] = &p
	}
	e.recomputeThreat()
	return e
}

func (e *Engine) initSectors() map[string]*models.Sector {
	sectors := make(map[string]*models.Sector, len(sectorDefs))
	for _, def := range sectorDefs {
		sectors[def.id] = &models.Sector{
			ID:          def.id,
			Name:        def.name,
			Icon:        def.icon,
			Description: def.description,
			Compromise:  e.uniform(5, 15),
			AttackSpeed: e.uniform(0.8, 1.2),
			Active:      true,
		}
	}
	return sectors
}

func (e *Engine) uniform(min, max float64) float64 {
	return min + e.rng.Float64()*(max-min)
}

// recomputeThreat recalculates the mean compromise. Caller must hold e.mu.
// An empty sector map means initialization failed; that is a programming
// error, not a user-input problem.
func (e *Engine) recomputeThreat() {
	if len(e.sectors) == 0 {
		panic("game: engine has no sectors")
	}
	var total float64
	for _, s := range e.sectors {
		total += s.Compromise
	}
	e.globalThreat = total / float64(len(e.sectors))
}

func clampSessionMinutes(minutes int) int {
	if minutes < minSessionMinutes {
		return minSessionMinutes
	}
	if minutes > maxSessionMinutes {
		return maxSessionMinutes
	}
	return minutes
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// SetSessionDuration sets the session length in minutes, clamped to [10,120],
// and returns the applied value.
func (e *Engine) SetSessionDuration(minutes int) int {
	e.mu.Lock()
	e.sessionMinutes = clampSessionMinutes(minutes)
	applied := e.sessionMinutes
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
	return applied
}

// SessionDuration returns the configured session length in minutes
func (e *Engine) SessionDuration() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessionMinutes
}

// Active reports whether the attack simulation is running
func (e *Engine) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// GlobalThreat returns the current mean compromise across all sectors
func (e *Engine) GlobalThreat() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.globalThreat
}

// AdjustSector adds delta (signed) to the sector's compromise, clamped to
// [0,100]. With lock set the sector is locked, and secured if it ended at zero.
func (e *Engine) AdjustSector(id string, delta float64, lock bool) (*models.AdjustResult, error) {
	e.mu.Lock()
	res, err := e.adjustSectorLocked(id, delta, lock)
	if err != nil {
		e.mu.Unlock()
		return nil, err
	}
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
	return res, nil
}

func (e *Engine) adjustSectorLocked(id string, delta float64, lock bool) (*models.AdjustResult, error) {
	s, ok := e.sectors[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSectorNotFound, id)
	}

	old := s.Compromise
	s.Compromise = clampPercent(s.Compromise + delta)
	if lock {
		s.Locked = true
		if s.Compromise <= 0 {
			s.Secured = true
		}
	}
	e.recomputeThreat()

	return &models.AdjustResult{
		SectorID:   id,
		OldPercent: old,
		NewPercent: s.Compromise,
		Locked:     s.Locked,
		Secured:    s.Secured,
	}, nil
}

// AdjustAllSectors applies the same delta to every sector, never locking
func (e *Engine) AdjustAllSectors(delta float64) []models.AdjustResult {
	e.mu.Lock()
	results := make([]models.AdjustResult, 0, len(e.sectors))
	for id := range e.sectors {
		res, err := e.adjustSectorLocked(id, delta, false)
		if err != nil {
			continue
		}
		results = append(results, *res)
	}
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
	return results
}

// SetSectorCompromise overrides a sector's compromise to an absolute value,
// clamped to [0,100]. A sector set to zero while locked becomes secured.
// Game-master correction; bypasses delta semantics.
func (e *Engine) SetSectorCompromise(id string, percent float64) (*models.AdjustResult, error) {
	e.mu.Lock()
	s, ok := e.sectors[id]
	if !ok {
		e.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrSectorNotFound, id)
	}

	old := s.Compromise
	s.Compromise = clampPercent(percent)
	if percent <= 0 && s.Locked {
		s.Secured = true
	}
	e.recomputeThreat()

	res := &models.AdjustResult{
		SectorID:   id,
		OldPercent: old,
		NewPercent: s.Compromise,
		Locked:     s.Locked,
		Secured:    s.Secured,
	}
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
	return res, nil
}

// LockSector locks or unlocks a sector. Unlocking always clears secured;
// secured is a stronger claim than locked.
func (e *Engine) LockSector(id string, lock bool) error {
	e.mu.Lock()
	s, ok := e.sectors[id]
	if !ok {
		e.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrSectorNotFound, id)
	}

	s.Locked = lock
	if !lock {
		s.Secured = false
	}
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
	return nil
}

// SecureSector forces a sector to the terminal safe state: zero compromise,
// locked, secured, in one atomic step.
func (e *Engine) SecureSector(id string) error {
	e.mu.Lock()
	s, ok := e.sectors[id]
	if !ok {
		e.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrSectorNotFound, id)
	}

	s.Compromise = 0
	s.Locked = true
	s.Secured = true
	e.recomputeThreat()
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
	return nil
}

// RandomUnsecuredSector picks a random sector that is not yet secured.
// Used when a reward names no explicit target.
func (e *Engine) RandomUnsecuredSector() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidates := make([]string, 0, len(e.sectors))
	for id, s := range e.sectors {
		if !s.Secured {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[e.rng.Intn(len(candidates))], true
}

// TryPassword attempts to redeem a countermeasure code. Fail-soft: unknown or
// exhausted codes produce a failure result and no mutation.
func (e *Engine) TryPassword(code string) *models.PasswordResult {
	code = strings.ToUpper(strings.TrimSpace(code))

	e.mu.Lock()
	pw, ok := e.passwords[code]
	if !ok {
		e.mu.Unlock()
		return &models.PasswordResult{
			Success:  false,
			Message:  "ACCESS DENIED - Invalid security code",
			Affected: []models.AdjustResult{},
		}
	}

	if pw.Used && pw.OneTime {
		e.mu.Unlock()
		return &models.PasswordResult{
			Success:  false,
			Message:  "ACCESS DENIED - Security code already utilized",
			Affected: []models.AdjustResult{},
		}
	}

	var affected []models.AdjustResult
	if pw.TargetSector != "" {
		if res, err := e.adjustSectorLocked(pw.TargetSector, -pw.Reduction, false); err == nil {
			affected = append(affected, *res)
		}
	} else {
		for id := range e.sectors {
			res, err := e.adjustSectorLocked(id, -pw.Reduction, false)
			if err != nil {
				continue
			}
			affected = append(affected, *res)
		}
	}

	pw.Used = true
	e.recomputeThreat()
	reduction := pw.Reduction
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
	return &models.PasswordResult{
		Success:   true,
		Message:   fmt.Sprintf("COUNTERMEASURE DEPLOYED - %g%% reduction applied", reduction),
		Reduction: reduction,
		Affected:  affected,
	}
}

// AddPassword registers a new password. The code is uppercased and trimmed.
func (e *Engine) AddPassword(pw models.Password) error {
	pw.Code = strings.ToUpper(strings.TrimSpace(pw.Code))
	if pw.Code == "" {
		return ErrPasswordNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.passwords[pw.Code]; exists {
		return fmt.Errorf("%w: %s", ErrPasswordExists, pw.Code)
	}
	pw.Used = false
	e.passwords[pw.Code] = &pw
	slog.Info("password added", "code", pw.Code, "target", pw.TargetSector, "one_time", pw.OneTime)
	return nil
}

// PutPassword registers a password, replacing any existing entry with the
// same code. Scenario content overlays use this to override built-ins.
func (e *Engine) PutPassword(pw models.Password) error {
	pw.Code = strings.ToUpper(strings.TrimSpace(pw.Code))
	if pw.Code == "" {
		return ErrPasswordNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	pw.Used = false
	if _, exists := e.passwords[pw.Code]; exists {
		slog.Info("password replaced", "code", pw.Code, "target", pw.TargetSector)
	}
	e.passwords[pw.Code] = &pw
	return nil
}

// RemovePassword deletes a password by code
func (e *Engine) RemovePassword(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.passwords[code]; !exists {
		return fmt.Errorf("%w: %s", ErrPasswordNotFound, code)
	}
	delete(e.passwords, code)
	return nil
}

// Passwords returns a copy of the registry for game-master listings
func (e *Engine) Passwords() []models.Password {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.Password, 0, len(e.passwords))
	for _, pw := range e.passwords {
		out = append(out, *pw)
	}
	return out
}

// AddTimeBonus grants extra session time. No-op before the session starts.
func (e *Engine) AddTimeBonus(seconds int) {
	e.mu.Lock()
	if !e.startTime.IsZero() {
		e.clockOffset += time.Duration(seconds) * time.Second
	}
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
}

// SubtractTime removes session time as a penalty. No-op before the session starts.
func (e *Engine) SubtractTime(seconds int) {
	e.mu.Lock()
	if !e.startTime.IsZero() {
		e.clockOffset -= time.Duration(seconds) * time.Second
	}
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
}

// Start begins the attack simulation and its background loop. Calling Start
// while already running is a no-op.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.active {
		e.mu.Unlock()
		return
	}
	e.active = true
	e.startTime = time.Now()
	e.clockOffset = 0

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.done = make(chan struct{})
	done := e.done
	snap := e.snapshotLocked()
	e.mu.Unlock()

	go e.run(ctx, done)

	slog.Info("attack simulation started", "session_minutes", e.SessionDuration())
	e.notify(snap)
}

// Stop halts the attack simulation, cancels the loop and waits for it to
// acknowledge, so a following Reset never races a straggling tick.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.active {
		e.mu.Unlock()
		return
	}
	e.active = false
	cancel := e.cancel
	done := e.done
	e.cancel = nil
	e.done = nil
	snap := e.snapshotLocked()
	e.mu.Unlock()

	cancel()
	<-done

	slog.Info("attack simulation stopped")
	e.notify(snap)
}

// Reset reinitializes every sector to a fresh randomized state, clears the
// session clock and password usage. Stops the simulation first if running.
func (e *Engine) Reset() {
	e.Stop()

	e.mu.Lock()
	e.sectors = e.initSectors()
	e.startTime = time.Time{}
	e.clockOffset = 0
	e.active = false
	for _, pw := range e.passwords {
		pw.Used = false
	}
	e.recomputeThreat()
	snap := e.snapshotLocked()
	e.mu.Unlock()

	slog.Info("game reset")
	e.notify(snap)
}

// run is the attack loop. Terminates only on cancellation.
func (e *Engine) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

// tick advances every unlocked, unsecured, active sector's compromise and
// broadcasts the result.
func (e *Engine) tick() {
	e.mu.Lock()
	if !e.active {
		e.mu.Unlock()
		return
	}

	base := e.attackIncrementLocked()

	unlocked := 0
	for _, s := range e.sectors {
		if !s.Locked && s.Active {
			unlocked++
		}
	}
	locked := len(e.sectors) - unlocked

	// Attack spreads to the remaining open sectors as others are closed off,
	// 5% faster per locked sector.
	compensation := 1.0
	if locked > 0 && unlocked > 0 {
		compensation = 1.0 + float64(locked)*0.05
	}

	for _, s := range e.sectors {
		if s.Locked || s.Secured {
			continue
		}
		if s.Active && s.Compromise < 100 {
			variation := e.uniform(0.7, 1.3)
			increment := base * s.AttackSpeed * variation * compensation
			s.Compromise = math.Min(100, s.Compromise+increment)
		}
	}

	e.recomputeThreat()
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
}

// attackIncrementLocked returns the per-tick compromise gain: 90 percentage
// points spread over the session, ticking every 2 seconds.
func (e *Engine) attackIncrementLocked() float64 {
	updates := float64(e.sessionMinutes * 30)
	return 90.0 / updates
}

// Snapshot returns the fully computed current view of the game
func (e *Engine) Snapshot() models.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() models.Snapshot {
	sectors := make(map[string]models.SectorView, len(e.sectors))
	for id, s := range e.sectors {
		sectors[id] = models.SectorView{
			ID:          s.ID,
			Name:        s.Name,
			Icon:        s.Icon,
			Description: s.Description,
			Compromise:  round1(s.Compromise),
			Status:      s.Status(),
			Active:      s.Active,
			Locked:      s.Locked,
			Secured:     s.Secured,
		}
	}

	return models.Snapshot{
		Sectors:                sectors,
		GlobalThreat:           round1(e.globalThreat),
		Active:                 e.active,
		SessionDurationMinutes: e.sessionMinutes,
		ElapsedSeconds:         e.elapsedSecondsLocked(),
		TimeRemainingSeconds:   e.timeRemainingLocked(),
		ETACollapseSeconds:     e.etaSecondsLocked(),
	}
}

func (e *Engine) elapsedSecondsLocked() int64 {
	if e.startTime.IsZero() {
		return 0
	}
	elapsed := time.Since(e.startTime) - e.clockOffset
	if elapsed < 0 {
		return 0
	}
	return int64(elapsed.Seconds())
}

func (e *Engine) timeRemainingLocked() int64 {
	total := int64(e.sessionMinutes) * 60
	if !e.active || e.startTime.IsZero() {
		return total
	}
	remaining := total - e.elapsedSecondsLocked()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// etaSecondsLocked estimates seconds until total collapse at the current
// attack rate.
func (e *Engine) etaSecondsLocked() int64 {
	if !e.active {
		return int64(e.sessionMinutes) * 60
	}

	remaining := 100 - e.globalThreat
	if remaining <= 0 {
		return 0
	}

	increment := e.attackIncrementLocked()
	updates := remaining / increment
	return int64(math.Round(updates * tickInterval.Seconds()))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Subscribe registers an observer and returns its id for Unsubscribe
func (e *Engine) Subscribe(fn Observer) int {
	e.obsMu.Lock()
	defer e.obsMu.Unlock()

	e.nextObsID++
	id := e.nextObsID
	e.observers[id] = fn
	return id
}

// Unsubscribe removes a previously registered observer
func (e *Engine) Unsubscribe(id int) {
	e.obsMu.Lock()
	defer e.obsMu.Unlock()
	delete(e.observers, id)
}

// notify pushes a snapshot to every observer, isolating failures so one
// observer cannot stop the others or the loop.
func (e *Engine) notify(snap models.Snapshot) {
	e.obsMu.Lock()
	observers := make([]Observer, 0, len(e.observers))
	for _, fn := range e.observers {
		observers = append(observers, fn)
	}
	e.obsMu.Unlock()

	for _, fn := range observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Warn("state observer panicked", "panic", r)
				}
			}()
			fn(snap)
		}()
	}
}
