package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseActorAccountID reads the account id the auth middleware stored on the
// request context.
func parseActorAccountID(c *fiber.Ctx) (int64, error) {
	value, ok := c.Locals("account_id").(string)
	if !ok {
		return 0, errors.New("missing account id")
	}
	accountID, err := strconv.ParseInt(value, 10, 64)
	if err != nil || accountID <= 0 {
		return 0, errors.New("invalid account id")
	}
	return accountID, nil
}

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
