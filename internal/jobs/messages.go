package jobs

import (
	"fmt"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/utils"
)

func preExpirySubject(days int) string {
	return fmt.Sprintf("Your storage rental ends in %d days", days)
}

func preExpiryBody(user *domain.User, box *domain.Box, rt *domain.Rental, days int) string {
	return fmt.Sprintf(`Dear %s,

Your rental of box %s (Rental ID: %d) ends on %s, which is %d days from now.

You can extend the rental or schedule a pickup of your belongings in your personal account. After the end date the monthly rate rises to %s.

Thank you,
SelfStorage Team`,
		user.Name, box.Code, rt.ID, rt.EndDate.Format("2006-01-02"), days,
		utils.OverdueMonthlyPrice(rt.FinalPricePerMonth).StringFixed(2))
}

func overdueInfoSubject() string {
	return "Your storage rental has expired"
}

func overdueInfoBody(user *domain.User, box *domain.Box, rt *domain.Rental) string {
	return fmt.Sprintf(`Dear %s,

Your rental of box %s (Rental ID: %d) ended on %s and your belongings are still in storage.

Storage now continues at the increased rate of %s per month. We keep your belongings for up to %d months past the end date; after that we can no longer guarantee their safekeeping.

Please pick up your belongings or extend the rental in your personal account.

Thank you,
SelfStorage Team`,
		user.Name, box.Code, rt.ID, rt.EndDate.Format("2006-01-02"),
		utils.OverdueMonthlyPrice(rt.FinalPricePerMonth).StringFixed(2),
		rt.OverdueGraceMonths)
}

func overdueMonthlySubject(monthIndex int32) string {
	return fmt.Sprintf("Overdue storage reminder: month %d", monthIndex)
}

func overdueMonthlyBody(user *domain.User, box *domain.Box, rt *domain.Rental, monthIndex int32) string {
	return fmt.Sprintf(`Dear %s,

Your belongings in box %s (Rental ID: %d) have now been stored for %d full months past the rental end date of %s.

The current rate is %s per month. We keep your belongings for up to %d months past the end date; after that we can no longer guarantee their safekeeping.

Please pick up your belongings or extend the rental in your personal account.

Thank you,
SelfStorage Team`,
		user.Name, box.Code, rt.ID, monthIndex, rt.EndDate.Format("2006-01-02"),
		utils.OverdueMonthlyPrice(rt.FinalPricePerMonth).StringFixed(2),
		rt.OverdueGraceMonths)
}
