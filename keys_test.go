package birdpass_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/birdpass"
)

func TestKeyString(t *testing.T) {
	require.Equal(t, "birdpass context key: IpAddrKey", birdpass.IpAddrKey.String())
}

func TestKeyDoesNotCollide(t *testing.T) {
	// Arrange
	ctx := context.WithValue(context.Background(), "IpAddrKey", "plain string key")

	// Act
	ctx = context.WithValue(ctx, birdpass.IpAddrKey, "203.0.113.5")

	// Assert
	require.Equal(t, "203.0.113.5", ctx.Value(birdpass.IpAddrKey))
	require.Equal(t, "plain string key", ctx.Value("IpAddrKey"))
}
