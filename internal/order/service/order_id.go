package service

import (
	"fmt"
	"math/rand"
	"time"
)

const OrderIDPrefix = "ORD"

// OrderIDGenerator builds ids as prefix + unix millis + random suffix in [0,1000).
// Nothing checks the result against existing orders, so two orders created in the
// same millisecond can collide.
type OrderIDGenerator struct {
	intN func(n int) int
}

func NewOrderIDGenerator() *OrderIDGenerator {
	return &OrderIDGenerator{intN: rand.Intn}
}

func (g *OrderIDGenerator) NewID(now time.Time) string {
	return fmt.Sprintf("%s%d%d", OrderIDPrefix, now.UnixMilli(), g.intN(1000))
}
