package domain

import (
	"fmt"
	"math"
	"time"
)

// Идентификаторы пакетов услуг
const (
	PackEssentiel = "Pack Essentiel"
	PackConfort   = "Pack Confort"
	PackPremium   = "Pack Premium"
)

// PackConfig статическая конфигурация пакета
type PackConfig struct {
	DurationMinutes int
	TotalPriceCents int64
}

// Duration длительность выполнения пакета
func (p PackConfig) Duration() time.Duration {
	return time.Duration(p.DurationMinutes) * time.Minute
}

// DepositCents размер онлайн-предоплаты
func (p PackConfig) DepositCents() int64 {
	return ComputeDepositCents(p.TotalPriceCents)
}

// Packs каталог пакетов, доступных к бронированию
var Packs = map[string]PackConfig{
	PackEssentiel: {DurationMinutes: 90, TotalPriceCents: 12000},
	PackConfort:   {DurationMinutes: 150, TotalPriceCents: 19000},
	PackPremium:   {DurationMinutes: 240, TotalPriceCents: 29000},
}

// BookablePacks порядок пакетов для отображения
var BookablePacks = []string{PackEssentiel, PackConfort, PackPremium}

// LookupPack возвращает конфигурацию пакета, если он доступен к бронированию
func LookupPack(pack string) (PackConfig, bool) {
	cfg, ok := Packs[pack]
	return cfg, ok
}

// ComputeDepositCents считает предоплату с округлением до цента
func ComputeDepositCents(totalPriceCents int64) int64 {
	return int64(math.Round(float64(totalPriceCents) * DepositPercent / 100))
}

// CentsToEuros форматирует сумму как "24.00"
func CentsToEuros(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
