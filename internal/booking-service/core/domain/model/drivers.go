package model

type Driver struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// driverPool is the static roster a confirmed booking draws its driver from.
var driverPool = []Driver{
	{Name: "Rajesh Kumar", Phone: "+91 98765 43210", Email: "rajesh.kumar@bookmycar.in"},
	{Name: "Amit Sharma", Phone: "+91 91234 56780", Email: "amit.sharma@bookmycar.in"},
	{Name: "Priya Patel", Phone: "+91 99887 76655", Email: "priya.patel@bookmycar.in"},
	{Name: "Sunil Deshmukh", Phone: "+91 90011 22334", Email: "sunil.deshmukh@bookmycar.in"},
	{Name: "Kavita Joshi", Phone: "+91 98700 11223", Email: "kavita.joshi@bookmycar.in"},
}

func DriverPool() []Driver {
	out := make([]Driver, len(driverPool))
	copy(out, driverPool)
	return out
}
