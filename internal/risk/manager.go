package risk

import (
	"context"
	"math"
	"sync"

	"ammo-agent/internal/logger"
)

const (
	DefaultMaxRiskPerTrade = 0.02
	DefaultMaxDrawdown     = 0.10
)

// Manager sizes positions against a fixed per-trade risk budget and tracks
// portfolio drawdown from its running peak. The peak survives across
// analysis runs, so one Manager belongs to one session and all access is
// serialized internally (single writer).
type Manager struct {
	mu              sync.Mutex
	portfolioValue  float64
	peakValue       float64
	maxRiskPerTrade float64
	maxDrawdown     float64
}

func NewManager(portfolioValue, maxRiskPerTrade, maxDrawdown float64) *Manager {
	if maxRiskPerTrade <= 0 {
		maxRiskPerTrade = DefaultMaxRiskPerTrade
	}
	if maxDrawdown <= 0 {
		maxDrawdown = DefaultMaxDrawdown
	}
	return &Manager{
		portfolioValue:  portfolioValue,
		peakValue:       portfolioValue,
		maxRiskPerTrade: maxRiskPerTrade,
		maxDrawdown:     maxDrawdown,
	}
}

// PositionSize returns the share count whose worst-case loss between entry
// and stop stays inside the risk budget. Fails closed: invalid inputs size
// to 0 and are logged, never raised. Direction-agnostic — works for long
// (stop below entry) and short (stop above entry) framings alike; any
// directional validation belongs to the caller.
func (m *Manager) PositionSize(ctx context.Context, entryPrice, stopLossPrice float64) int {
	if entryPrice <= 0 || stopLossPrice <= 0 || entryPrice == stopLossPrice {
		logger.Warn(ctx, "Invalid entry or stop-loss price, sizing position to zero",
			"event", "INVALID_RISK_INPUTS",
			"entry_price", entryPrice,
			"stop_loss_price", stopLossPrice,
		)
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	riskAmount := m.portfolioValue * m.maxRiskPerTrade
	riskPerShare := math.Abs(entryPrice - stopLossPrice)
	size := int(riskAmount / riskPerShare)

	logger.Debug(ctx, "Position size calculated",
		"entry_price", entryPrice,
		"stop_loss_price", stopLossPrice,
		"risk_amount", riskAmount,
		"risk_per_share", riskPerShare,
		"position_size", size,
	)
	return size
}

// TargetPrice places the profit target rewardRatio risk-distances away from
// entry, on the opposite side from the stop. Returns 0 when entry and stop
// coincide.
func (m *Manager) TargetPrice(entryPrice, stopLossPrice, rewardRatio float64) float64 {
	if entryPrice == stopLossPrice {
		return 0
	}
	reward := math.Abs(entryPrice-stopLossPrice) * rewardRatio
	if entryPrice > stopLossPrice {
		return entryPrice + reward
	}
	return entryPrice - reward
}

// CheckDrawdown updates the running peak and reports whether the decline
// from that peak exceeds the configured limit. Call exactly once per
// evaluation tick: skipping calls lets the peak go stale.
func (m *Manager) CheckDrawdown(ctx context.Context, currentPortfolioValue float64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if currentPortfolioValue > m.peakValue {
		m.peakValue = currentPortfolioValue
	}
	if m.peakValue <= 0 {
		return false
	}

	drawdown := (m.peakValue - currentPortfolioValue) / m.peakValue
	if drawdown > m.maxDrawdown {
		logger.Error(ctx, "Max drawdown exceeded",
			"event", "MAX_DRAWDOWN_EXCEEDED",
			"drawdown", drawdown,
			"max_drawdown", m.maxDrawdown,
			"peak_value", m.peakValue,
			"current_value", currentPortfolioValue,
		)
		return true
	}
	return false
}

func (m *Manager) PortfolioValue() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.portfolioValue
}

func (m *Manager) PeakValue() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.peakValue
}
