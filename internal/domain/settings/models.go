package settings

import (
	"errors"
	"strconv"
	"strings"
)

// StoreSettings is the single process-wide fee and business-hour
// configuration. The pricing and report engines read it, never write it.
type StoreSettings struct {
	HourlySetFee   float64 `json:"hourlySetFee"`
	DouhanFee      float64 `json:"douhanFee"`
	DouhanBackRate float64 `json:"douhanBackRate"`
	ServiceFeeRate float64 `json:"serviceFeeRate"`
	TaxRate        float64 `json:"taxRate"`
	OpenTime       string  `json:"openTime"`
	CloseTime      string  `json:"closeTime"`
}

var (
	ErrNegativeFee = errors.New("fees must not be negative")
	ErrBadRate     = errors.New("rates must be between 0 and 1")
	ErrBadClock    = errors.New("times must be HH:MM")
)

func (s StoreSettings) Validate() error {
	if s.HourlySetFee < 0 || s.DouhanFee < 0 {
		return ErrNegativeFee
	}
	if s.DouhanBackRate < 0 || s.DouhanBackRate > 1 || s.ServiceFeeRate < 0 || s.ServiceFeeRate > 1 || s.TaxRate < 0 || s.TaxRate > 1 {
		return ErrBadRate
	}
	for _, clock := range []string{s.OpenTime, s.CloseTime} {
		if !validClock(clock) {
			return ErrBadClock
		}
	}
	return nil
}

func validClock(s string) bool {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return false
	}
	m, err := strconv.Atoi(mm)
	return err == nil && m >= 0 && m <= 59
}

// Defaults is what the engines assume when no settings row exists:
// no set fee, 3000 yen douhan fee with a 50% back, no service fee, no tax.
func Defaults() StoreSettings {
	return StoreSettings{
		HourlySetFee:   0,
		DouhanFee:      3000,
		DouhanBackRate: 0.5,
		ServiceFeeRate: 0,
		TaxRate:        0,
		OpenTime:       "20:00",
		CloseTime:      "05:00",
	}
}
