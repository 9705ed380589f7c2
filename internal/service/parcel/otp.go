package parcel

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// newDeliveryOTP выдает 4-значный числовой код, с ведущими нулями.
func newDeliveryOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// crypto/rand на линуксе не падает; fallback на время оставлен на всякий случай
		return fmt.Sprintf("%04d", time.Now().UnixNano()%10000)
	}
	return fmt.Sprintf("%04d", n.Int64())
}

func newTrackingNumber(now time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		n = big.NewInt(0)
	}
	return fmt.Sprintf("PCL-%s-%06d", now.UTC().Format("20060102"), n.Int64())
}
