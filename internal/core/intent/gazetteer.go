package intent

import "strings"

// places holds lowercased Indian metros, states and the location-free markers
var places = func() map[string]struct{} {
	names := []string{
		// markers
		"india", "remote", "anywhere",

		// cities
		"mumbai", "navi mumbai", "delhi", "new delhi", "bangalore", "bengaluru", "hyderabad",
		"chennai", "kolkata", "pune", "ahmedabad", "jaipur", "lucknow", "surat", "kanpur",
		"nagpur", "indore", "bhopal", "patna", "chandigarh", "kochi", "cochin", "coimbatore",
		"noida", "gurgaon", "gurugram", "thiruvananthapuram", "trivandrum", "visakhapatnam",
		"vizag", "vadodara", "guwahati", "bhubaneswar", "mysore", "mysuru", "mangalore",
		"mangaluru", "nashik", "ludhiana", "agra", "varanasi", "dehradun", "ranchi", "raipur",
		"madurai", "vijayawada", "thane", "faridabad", "ghaziabad", "amritsar", "shimla",
		"srinagar", "jammu", "goa", "panaji", "puducherry", "pondicherry",

		// states and territories
		"andhra pradesh", "arunachal pradesh", "assam", "bihar", "chhattisgarh", "gujarat",
		"haryana", "himachal pradesh", "jharkhand", "karnataka", "kerala", "madhya pradesh",
		"maharashtra", "manipur", "meghalaya", "mizoram", "nagaland", "odisha", "orissa",
		"punjab", "rajasthan", "sikkim", "tamil nadu", "telangana", "tripura",
		"uttar pradesh", "uttarakhand", "west bengal", "ladakh",
	}
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}()

// lookupPlace matches a candidate tail case-insensitively, ignoring trailing punctuation
// it returns the tail as written by the model
func lookupPlace(tail string) (string, bool) {
	tail = strings.TrimRight(tail, ".,;!")
	if _, ok := places[strings.ToLower(tail)]; ok {
		return tail, true
	}
	return "", false
}
