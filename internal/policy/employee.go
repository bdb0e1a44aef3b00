package policy

// CanViewEmployees: the employee directory is visible to managers and
// admins only.
func CanViewEmployees(a Actor) bool {
	return a.IsManagerOrAdmin()
}

func CanManageEmployees(a Actor) bool {
	return a.IsAdmin()
}

func CanManageHolidays(a Actor) bool {
	return a.IsAdmin()
}
