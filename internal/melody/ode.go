package melody

// Ode is the final part of Beethoven's ninth symphony ("Ode to Joy").
var Ode = []Note{
	{76, 4, 1},
	{76, 4, 1},
	{77, 4, 1},
	{79, 4, 1},

	{79, 4, 1},
	{77, 4, 1},
	{76, 4, 1},
	{74, 4, 1},

	{72, 4, 1},
	{72, 4, 1},
	{74, 4, 1},
	{76, 4, 1},

	{76, 4, 4},
	{74, 2, 1},
	{74, 6, 4},

	{76, 4, 1},
	{76, 4, 1},
	{77, 4, 1},
	{79, 4, 1},

	{79, 4, 1},
	{77, 4, 1},
	{76, 4, 1},
	{74, 4, 1},

	{72, 4, 1},
	{72, 4, 1},
	{74, 4, 1},
	{76, 4, 1},

	{74, 4, 4},
	{72, 2, 1},
	{72, 6, 4},

	{74, 4, 1},
	{74, 4, 1},
	{76, 4, 1},
	{72, 4, 1},

	{74, 4, 1},
	{76, 2, 1},
	{77, 2, 1},
	{76, 4, 1},
	{72, 4, 1},

	{74, 4, 1},
	{76, 2, 1},
	{77, 2, 1},
	{76, 4, 1},
	{74, 4, 1},

	{72, 4, 1},
	{74, 4, 1},
	{67, 6, 2},

	{76, 4, 1},
	{76, 4, 1},
	{77, 4, 1},
	{79, 4, 1},

	{79, 4, 1},
	{77, 4, 1},
	{76, 4, 1},
	{74, 4, 1},

	{72, 4, 1},
	{72, 4, 1},
	{74, 4, 1},
	{76, 4, 1},

	{74, 6, 2},
	{72, 2, 1},
	{72, 6, 10},
}
