package entity

// Video qidiruv natijasidagi bitta element
type Video struct {
	ID    string
	Title string
}
