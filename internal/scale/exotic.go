package scale

// exotic holds the microtonal and world-music interval sets. Every row carries
// its own length, so an interior 0 is a legal interval rather than a terminator.
var exotic = [ExoticCount]Definition{
	{Name: "Blues Major", Intervals: []float64{0, 3, 4, 7, 9, 10}},
	{Name: "Blues Minor", Intervals: []float64{0, 3, 5, 6, 7, 10}},
	{Name: "Folk", Intervals: []float64{0, 1, 3, 4, 5, 7, 8, 10}},
	{Name: "Japanese", Intervals: []float64{0, 1, 5, 7, 8}},
	{Name: "Gamelan", Intervals: []float64{0, 1, 3, 7, 8}},
	{Name: "Gypsy", Intervals: []float64{0, 2, 3, 6, 7, 8, 11}},
	{Name: "Arabian", Intervals: []float64{0, 1, 4, 5, 7, 8, 11}},
	{Name: "Flamenco", Intervals: []float64{0, 1, 4, 5, 7, 8, 10}},
	{Name: "Whole Tone (Exotic)", Intervals: []float64{0, 2, 4, 6, 8, 10}},
	{Name: "Pythagorean", Intervals: []float64{0, 0.898, 2.039, 2.938, 4.078, 4.977, 6.117, 7.023, 7.922, 9.062, 9.961, 11.102}},
	{Name: "1/4-EB", Intervals: []float64{0, 1, 2, 3, 3.5, 5, 6, 7, 8, 9, 10, 10.5}},
	{Name: "1/4-E", Intervals: []float64{0, 1, 2, 3, 3.5, 5, 6, 7, 8, 9, 10, 11}},
	{Name: "1/4-EA", Intervals: []float64{0, 1, 2, 3, 3.5, 5, 6, 7, 8, 8.5, 10, 11}},
	{Name: "Bhairav", Intervals: []float64{0, 0.898, 3.859, 4.977, 7.023, 7.922, 10.883}},
	{Name: "Gunakri", Intervals: []float64{0, 1.117, 4.977, 7.023, 8.141}},
	{Name: "Marwa", Intervals: []float64{0, 1.117, 3.859, 5.898, 8.844, 10.883}},
	{Name: "Shree", Intervals: []float64{0, 0.898, 3.859, 5.898, 7.023, 7.922, 10.883}},
	{Name: "Purvi", Intervals: []float64{0, 1.117, 3.859, 5.898, 7.023, 8.141, 10.883}},
	{Name: "Bilawal", Intervals: []float64{0, 2.039, 3.859, 4.977, 7.023, 9.062, 10.883}},
	{Name: "Yaman", Intervals: []float64{0, 2.039, 4.078, 6.117, 7.023, 9.062, 11.102}},
	{Name: "Kafi", Intervals: []float64{0, 1.82, 2.938, 4.977, 7.023, 8.844, 9.961}},
	{Name: "Bhimpalasree", Intervals: []float64{0, 2.039, 3.156, 4.977, 7.023, 9.062, 10.18}},
	{Name: "Darbari", Intervals: []float64{0, 2.039, 2.938, 4.977, 7.023, 7.922, 9.961}},
	{Name: "Rageshree", Intervals: []float64{0, 2.039, 3.859, 4.977, 7.023, 8.844, 9.961}},
	{Name: "Khamaj", Intervals: []float64{0, 2.039, 3.859, 4.977, 7.023, 9.062, 9.961, 11.102}},
	{Name: "Mimal", Intervals: []float64{0, 2.039, 2.938, 4.977, 7.023, 8.844, 9.961, 10.883}},
	{Name: "Parameshwari", Intervals: []float64{0, 0.898, 2.938, 4.977, 8.844, 9.961}},
	{Name: "Rangeshwari", Intervals: []float64{0, 2.039, 2.938, 4.977, 7.023, 10.883}},
	{Name: "Gangeshwari", Intervals: []float64{0, 3.859, 4.977, 7.023, 7.922, 9.961}},
	{Name: "Kameshwari", Intervals: []float64{0, 2.039, 5.898, 7.023, 8.844, 9.961}},
	{Name: "Pa_Kafi", Intervals: []float64{0, 2.039, 2.938, 4.977, 7.023, 9.062, 9.961}},
	{Name: "Natbhairav", Intervals: []float64{0, 2.039, 3.859, 4.977, 7.023, 7.922, 10.883}},
	{Name: "M_Kauns", Intervals: []float64{0, 2.039, 4.078, 4.977, 7.922, 9.961}},
	{Name: "Bairagi", Intervals: []float64{0, 0.898, 4.977, 7.023, 9.961}},
	{Name: "B_Todi", Intervals: []float64{0, 0.898, 2.938, 7.023, 9.961}},
	{Name: "Chandradeep", Intervals: []float64{0, 2.938, 4.977, 7.023, 9.961}},
	{Name: "Kaushik_Todi", Intervals: []float64{0, 2.938, 4.977, 5.898, 7.922}},
	{Name: "Jogeshwari", Intervals: []float64{0, 2.938, 3.859, 4.977, 8.844, 9.961}},
	{Name: "Tartini-Vallotti", Intervals: []float64{0, 0.9375, 1.9609, 2.9766, 3.9219, 5.0234, 5.9219, 6.9766, 7.9609, 8.9375, 10, 10.8984}},
	{Name: "13/22-tET", Intervals: []float64{0, 1.0938, 2.1797, 3.2734, 3.8203, 4.9063, 6, 6.5469, 7.6328, 8.7266, 9.2734, 10.3672, 11.4531}},
	{Name: "13/19-tET", Intervals: []float64{0, 1.2656, 1.8984, 3.1563, 3.7891, 5.0547, 5.6875, 6.9453, 7.5781, 8.8438, 9.4766, 10.7344, 11.3672}},
	{Name: "Magic145", Intervals: []float64{0, 1.4922, 2.0703, 2.6484, 3.2266, 3.8047, 4.3828, 5.875, 6.4531, 7.0313, 7.6172, 8.1953, 9.6797, 10.2656, 10.8438, 11.4219}},
	{Name: "Quartaminorthirds", Intervals: []float64{0, 0.7734, 1.5547, 2.3281, 3.1094, 3.8828, 4.6641, 5.4375, 6.2188, 6.9922, 7.7734, 8.5469, 9.3203, 10.1016, 10.875, 11.6563}},
	{Name: "Armodue", Intervals: []float64{0, 0.7734, 1.5469, 2.3203, 3.0938, 3.8672, 4.6484, 5.4219, 6.1953, 6.9688, 7.7422, 8.5156, 9.2891, 9.6797, 10.4531, 11.2266}},
	{Name: "Hirajoshi", Intervals: []float64{0, 1.8516, 3.3672, 6.8281, 7.8984}},
	{Name: "Scottish Bagpipes", Intervals: []float64{0, 1.9688, 3.4063, 4.9531, 7.0313, 8.5313, 10.0938}},
	{Name: "Thai Ranat", Intervals: []float64{0, 1.6094, 3.4609, 5.2578, 6.8594, 8.6172, 10.2891}},
	{Name: "Sevish 31-EDO", Intervals: []float64{0, 1.1641, 2.3203, 3.0938, 4.2578, 5.0313, 6.1953, 7.3516, 8.1328, 9.2891, 10.0625, 11.2266}},
	{Name: "11TET Machine", Intervals: []float64{0, 2.1797, 4.3672, 5.4531, 7.6328, 9.8203}},
	{Name: "13TET Father", Intervals: []float64{0, 1.8438, 3.6953, 4.6172, 6.4609, 8.3047, 9.2344, 11.0781}},
	{Name: "15TET Blackwood", Intervals: []float64{0, 1.6016, 2.3984, 4, 4.7969, 6.3984, 7.2031, 8.7969, 9.6016, 11.2031}},
	{Name: "16TET Mavila", Intervals: []float64{0, 1.5, 3, 5.25, 6.75, 8.25, 9.75}},
	{Name: "16TET Mavila9", Intervals: []float64{0, 0.75, 2.25, 3.75, 5.25, 6, 7.5, 9, 10.5}},
	{Name: "17TET Superpyth", Intervals: []float64{0, 0.7031, 1.4141, 2.8203, 3.5313, 4.9375, 5.6484, 6.3516, 7.7578, 8.4688, 9.8828, 10.5859}},
	{Name: "22TET Orwell", Intervals: []float64{0, 1.0938, 2.7266, 3.8203, 5.4531, 6.5469, 8.1797, 9.2734, 10.9063}},
	{Name: "22TET Pajara", Intervals: []float64{0, 1.0938, 2.1797, 3.8203, 4.9063, 6, 7.0938, 8.1797, 9.8203, 10.9063}},
	{Name: "22TET Pajara2", Intervals: []float64{0, 1.0938, 2.1797, 3.8203, 4.9063, 6, 7.0938, 8.7266, 9.8203, 10.9063}},
	{Name: "22TET Porcupine", Intervals: []float64{0, 1.6328, 3.2734, 4.9063, 7.0938, 8.7266, 10.3672}},
	{Name: "26TET Flattone", Intervals: []float64{0, 0.4609, 1.8438, 2.3047, 3.6953, 5.0781, 5.5391, 6.9219, 7.3828, 8.7656, 9.2266, 10.6172}},
	{Name: "26TET Lemba", Intervals: []float64{0, 1.3828, 2.3047, 3.6953, 4.6172, 6, 7.3828, 8.3047, 9.6875, 10.6172}},
	{Name: "46TET Sensi", Intervals: []float64{0, 1.3047, 2.6094, 3.9141, 4.4375, 5.7422, 7.0469, 8.3516, 8.8672, 10.1719, 11.4766}},
	{Name: "53TET Orwell", Intervals: []float64{0, 1.1328, 2.7188, 3.8516, 5.4375, 6.5625, 8.1484, 9.2813, 10.8672}},
	{Name: "72TET Prent", Intervals: []float64{0, 2, 2.6641, 3.8359, 4.3359, 5, 5.5, 7, 8.8359, 9.6641, 10.5, 10.8359}},
	{Name: "Zeus Trivalent", Intervals: []float64{0, 1.5781, 3.875, 5.4531, 7.0313, 9.3359, 10.9063}},
	{Name: "202TET Octone", Intervals: []float64{0, 1.1875, 3.5078, 3.8594, 6.1797, 7.0078, 9.3281, 9.6797}},
	{Name: "313TET Elfmadagasgar", Intervals: []float64{0, 2.0313, 2.4922, 4.5234, 4.9844, 7.0156, 7.4766, 9.5078, 9.9688}},
	{Name: "Marvel Glumma", Intervals: []float64{0, 0.4922, 2.3281, 3.1719, 3.8359, 5.4922, 6.1641, 7.0078, 8.8359, 9.3281, 9.6797, 11.6563}},
	{Name: "TOP Parapyth", Intervals: []float64{0, 0.5859, 2.0703, 2.6563, 4.1406, 4.7266, 5.5469, 7.0469, 7.6172, 9.1094, 9.6875, 11.1797}},
	{Name: "16ED", Intervals: []float64{0, 0.75, 1.5, 2.25, 3, 3.75, 4.5, 5.25, 6, 6.75, 7.5, 8.25, 9, 9.75, 10.5, 11.25}},
	{Name: "15ED", Intervals: []float64{0, 0.7969, 1.6016, 2.3984, 3.2031, 4, 4.7969, 5.6016, 6.3984, 7.2031, 8, 8.7969, 9.6016, 10.3984, 11.2031}},
	{Name: "14ED", Intervals: []float64{0, 0.8594, 1.7109, 2.5703, 3.4297, 4.2891, 5.1484, 6, 6.8594, 7.7188, 8.5781, 9.4375, 10.2969, 11.1563}},
	{Name: "13ED", Intervals: []float64{0, 0.9219, 1.8438, 2.7656, 3.6953, 4.6328, 5.6328, 6.5703, 7.4922, 8.4141, 9.3359, 10.2578, 11.1797}},
	{Name: "11ED", Intervals: []float64{0, 1.0938, 2.1797, 3.2734, 4.3672, 5.4531, 6.5469, 7.6328, 8.7266, 9.8203, 10.9063}},
	{Name: "10ED", Intervals: []float64{0, 1.2031, 2.3984, 3.6016, 4.7969, 6, 7.2031, 8.3984, 9.6016, 10.7969}},
	{Name: "9ED", Intervals: []float64{0, 1.3359, 2.6641, 4, 5.3359, 6.6641, 8, 9.3359, 10.6641}},
	{Name: "8ED", Intervals: []float64{0, 1.5, 3, 4.5, 6, 7.5, 9, 10.5}},
	{Name: "7ED", Intervals: []float64{0, 1.7109, 3.4297, 5.1484, 6.8594, 8.5781, 10.2969}},
	{Name: "6ED", Intervals: []float64{0, 2, 4, 6, 8, 10}},
	{Name: "5ED", Intervals: []float64{0, 2.3984, 4.7969, 7.2031, 9.6016}},
	{Name: "16HD2", Intervals: []float64{0, 1.0469, 2.0391, 2.9766, 3.8594, 4.7109, 5.5156, 6.2813, 7.0234, 7.7266, 8.4063, 9.0625, 9.6875, 10.2969, 10.8906, 11.4531}},
	{Name: "15HD2", Intervals: []float64{0, 1.1172, 2.1641, 3.1563, 4.0938, 4.9766, 5.8203, 6.6328, 7.4141, 8.1641, 8.8828, 9.5703, 10.2266, 10.852, 11.4453}},
	{Name: "14HD2", Intervals: []float64{0, 1.1953, 2.3125, 3.3594, 4.3516, 5.2891, 6.1797, 7.0313, 7.8516, 8.6406, 9.3984, 10.125, 10.8203, 11.4844}},
	{Name: "13HD2", Intervals: []float64{0, 1.2813, 2.4766, 3.5938, 4.6406, 5.6328, 6.5703, 7.4609, 8.3125, 9.125, 9.9063, 10.6484, 11.3594}},
	{Name: "12HD2", Intervals: []float64{0, 1.3828, 2.6719, 3.8594, 5.0078, 6.0313, 6.9922, 7.9531, 8.8438, 9.6875, 10.4844, 11.2656}},
	{Name: "11HD2", Intervals: []float64{0, 1.5078, 2.8906, 4.1719, 5.3672, 6.4844, 7.5391, 8.5234, 9.4688, 10.3672, 11.2109}},
	{Name: "10HD2", Intervals: []float64{0, 1.6484, 3.1563, 4.5391, 5.8672, 7.0234, 8.0703, 9.1875, 10.1797, 11.1094}},
	{Name: "9HD2", Intervals: []float64{0, 1.8203, 3.4766, 5.0938, 6.6797, 8.2422, 9.7891, 11.3203, 12}},
	{Name: "8HD2", Intervals: []float64{0, 2.0391, 3.8594, 5.5156, 7.0234, 8.4063, 9.6875, 10.8906}},
	{Name: "7HD2", Intervals: []float64{0, 2.3125, 4.3516, 6.1797, 7.8516, 9.3984, 10.8203}},
	{Name: "6HD2", Intervals: []float64{0, 3.0313, 6.0313, 9.0625, 12, 15}},
	{Name: "5HD2", Intervals: []float64{0, 4, 8, 12, 16}},
	{Name: "32-16SD2", Intervals: []float64{0, 0.5469, 1.1172, 1.7031, 2.3125, 2.9375, 3.5938, 4.2734, 4.9766, 5.7188, 6.4844, 7.2891, 8.0234, 8.9297, 9.9609, 10.9531}},
	{Name: "30-15SD2", Intervals: []float64{0, 0.5859, 1.1953, 1.8203, 2.4766, 3.1563, 3.8594, 4.6016, 5.3672, 6.1797, 7.0313, 7.9063, 8.8438, 9.8359, 10.8828}},
	{Name: "28-14SD2", Intervals: []float64{0, 0.6328, 1.2813, 1.9609, 2.6719, 3.4063, 4.1719, 4.977, 5.8203, 6.6953, 7.6328, 8.6328, 9.6875, 10.8047, 12}},
	{Name: "26-13SD2", Intervals: []float64{0, 0.6797, 1.3828, 2.125, 2.8906, 3.6953, 4.5391, 5.4219, 6.3516, 7.3203, 8.3281, 9.375, 10.4609}},
	{Name: "24-12SD2", Intervals: []float64{0, 0.7344, 1.5078, 2.3125, 3.1563, 4.0469, 4.9766, 5.9531, 6.9688, 8.0234, 9.1172, 10.25}},
	{Name: "22-11SD2", Intervals: []float64{0, 0.8047, 1.6484, 2.5391, 3.4766, 4.4609, 5.4922, 6.5703, 7.6953, 8.8672, 10.0859}},
	{Name: "20-10SD2", Intervals: []float64{0, 0.8906, 1.8203, 2.8125, 3.8594, 4.9609, 6.1172, 7.3281, 8.5938, 9.9141}},
	{Name: "18-9SD2", Intervals: []float64{0, 0.9922, 2.0391, 3.1563, 4.3359, 5.5781, 6.8828, 8.25, 9.6797}},
	{Name: "16-8SD2", Intervals: []float64{0, 1.1172, 2.3125, 3.5938, 4.9609, 6.4141, 7.9531, 9.5781}},
	{Name: "14-7SD2", Intervals: []float64{0, 1.2813, 2.6719, 4.1719, 5.7891, 7.5234, 9.375}},
	{Name: "12-6SD2", Intervals: []float64{0, 1.5078, 3.1563, 4.9609, 6.9219, 9.0391}},
	{Name: "10-5SD2", Intervals: []float64{0, 1.8203, 3.8594, 6.1719, 8.8438}},
	{Name: "8-4SD2", Intervals: []float64{0, 2.3125, 4.9766, 8.1406}},
	{Name: "BP Equal", Intervals: []float64{0, 0.9219, 1.8438, 2.7656, 3.6953, 4.6172, 5.5391, 6.4609, 7.3828, 8.3047, 9.2344, 10.1563, 11.0781}},
	{Name: "BP Just", Intervals: []float64{0, 0.8438, 1.9063, 2.7422, 3.6719, 4.6484, 5.5781, 6.4219, 7.3516, 8.3281, 9.2578, 10.0938, 11.1563}},
	{Name: "BP Lambda", Intervals: []float64{0, 1.9063, 2.7422, 3.6719, 5.5781, 6.4219, 8.3281, 9.2578, 11.1563}},
	{Name: "8-24HD3", Intervals: []float64{0, 1.2891, 2.4375, 3.4766, 4.4297, 5.3047, 6.1172, 6.8828, 7.6172, 8.3203, 9, 9.6641, 10.3125, 10.9453, 11.5625, 12.1563}},
	{Name: "7-21HD3", Intervals: []float64{0, 1.4609, 2.7422, 3.8984, 4.9375, 5.8672, 6.6953, 7.4297, 8.0781, 8.6484, 9.1484, 9.5859, 9.9688, 10.3047}},
	{Name: "6-18HD3", Intervals: []float64{0, 1.6875, 3.1406, 4.4297, 5.5703, 6.5703, 7.4375, 8.1797, 8.8047, 9.3203, 9.7344, 10.0547}},
	{Name: "5-15HD3", Intervals: []float64{0, 1.9922, 3.6719, 5.1328, 6.3828, 7.4297, 8.2813, 8.9453, 9.4297, 9.7422}},
	{Name: "4-12HD3", Intervals: []float64{0, 2.4375, 4.4297, 6.1172, 7.6172, 9, 10.3125, 11.5625}},
	{Name: "24-8HD3", Intervals: []float64{0, 0.4688, 0.9531, 1.4609, 1.9922, 2.5469, 3.125, 3.7266, 4.3516, 5, 5.6719, 6.3672, 7.0859, 7.8281, 8.5938, 9.3828}},
	{Name: "21-7HD3", Intervals: []float64{0, 0.5313, 1.0938, 1.6875, 2.3047, 2.9453, 3.6094, 4.2969, 5.0078, 5.7422, 6.5, 7.2813, 8.0859, 8.9141}},
	{Name: "18-6HD3", Intervals: []float64{0, 0.625, 1.2891, 1.9922, 2.7344, 3.5156, 4.3359, 5.1953, 6.0938, 7.0313, 8.0078, 9.0234}},
	{Name: "15-5HD3", Intervals: []float64{0, 0.75, 1.5625, 2.4375, 3.375, 4.375, 5.4375, 6.5625, 7.75, 9}},
	{Name: "12-4HD3", Intervals: []float64{0, 0.9531, 1.9922, 3.125, 4.3516, 5.6719, 7.0859, 8.5938}},
}
