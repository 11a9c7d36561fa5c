package search_bikes

func validateRequest(req *Request) error {
	if !req.Search.HasCity() {
		return ErrCityNotSelected
	}
	if !req.Search.Window().IsValid() {
		return ErrInvalidWindow
	}
	return nil
}
