package catalog

import "medigen/models"

var defaultDoctors = []models.Doctor{
	{ID: 1, Name: "Dr. Amina Wanjiru", Specialty: "Cardiology", Location: "Nairobi Hospital", Rating: 4.9, Availability: "Available Today", AvatarColor: "bg-teal-500"},
	{ID: 2, Name: "Dr. Brian Otieno", Specialty: "Dermatology", Location: "Aga Khan Hospital", Rating: 4.7, Availability: "Available Tomorrow", AvatarColor: "bg-sky-500"},
	{ID: 3, Name: "Dr. Grace Muthoni", Specialty: "Pediatrics", Location: "Gertrude's Children's Hospital", Rating: 4.8, Availability: "Available Today", AvatarColor: "bg-rose-500"},
	{ID: 4, Name: "Dr. Samuel Kiptoo", Specialty: "Orthopedics", Location: "MP Shah Hospital", Rating: 4.6, Availability: "Next week", AvatarColor: "bg-amber-500"},
	{ID: 5, Name: "Dr. Fatuma Hassan", Specialty: "Neurology", Location: "Nairobi Hospital", Rating: 4.8, Availability: "Available Tomorrow", AvatarColor: "bg-indigo-500"},
	{ID: 6, Name: "Dr. Peter Njoroge", Specialty: "General Practice", Location: "Karen Hospital", Rating: 4.5, Availability: "Available Today", AvatarColor: "bg-emerald-500"},
	{ID: 7, Name: "Dr. Linda Achieng", Specialty: "Cardiology", Location: "Aga Khan Hospital", Rating: 4.7, Availability: "Available Today", AvatarColor: "bg-purple-500"},
	{ID: 8, Name: "Dr. David Mwangi", Specialty: "Psychiatry", Location: "Mathari Wellness Centre", Rating: 4.4, Availability: "Next week", AvatarColor: "bg-orange-500"},
}

var defaultHospitals = []models.Hospital{
	{ID: 1, Name: "Nairobi Hospital", Type: "General Hospital", Distance: "2.1 km"},
	{ID: 2, Name: "Aga Khan Hospital", Type: "Specialist Hospital", Distance: "3.4 km"},
	{ID: 3, Name: "Gertrude's Children's Hospital", Type: "Children's Hospital", Distance: "5.0 km"},
	{ID: 4, Name: "Karen Hospital", Type: "General Hospital", Distance: "8.7 km"},
}

var defaultArticles = []models.Article{
	{ID: 1, Title: "Understanding Blood Pressure Readings", Category: "Heart Health", Excerpt: "What the two numbers mean and when to talk to your doctor.", Image: "https://picsum.photos/seed/bp/400/250"},
	{ID: 2, Title: "Sleep Habits That Actually Help", Category: "Wellness", Excerpt: "Small changes to your evening routine that improve rest.", Image: "https://picsum.photos/seed/sleep/400/250"},
	{ID: 3, Title: "Managing Seasonal Allergies", Category: "Allergies", Excerpt: "Common triggers and everyday ways to reduce exposure.", Image: "https://picsum.photos/seed/allergy/400/250"},
	{ID: 4, Title: "A Beginner's Guide to Healthy Eating", Category: "Nutrition", Excerpt: "Building balanced meals without strict diets.", Image: "https://picsum.photos/seed/food/400/250"},
}

var defaultForumTopics = []models.ForumTopic{
	{ID: 1, Title: "Tips for staying active while working from home?", Author: "Wanjiku M.", Time: "2 hours ago", Category: "Fitness", Replies: 14, LastActivity: "10 minutes ago"},
	{ID: 2, Title: "Coping with anxiety before medical appointments", Author: "Kevin O.", Time: "5 hours ago", Category: "Mental Health", Replies: 23, LastActivity: "1 hour ago"},
	{ID: 3, Title: "Best sources of iron for vegetarians", Author: "Aisha K.", Time: "1 day ago", Category: "Nutrition", Replies: 9, LastActivity: "3 hours ago"},
	{ID: 4, Title: "Living with type 2 diabetes: share your routine", Author: "James N.", Time: "2 days ago", Category: "Chronic Conditions", Replies: 31, LastActivity: "30 minutes ago"},
}
